package services

import (
	"math/rand"

	"devgate/internal/models"
)

var defaultQuestions = []models.Question{
	{Prompt: "What is the output of this Python code?\nb = ['a', 'b', 'c', 4]\nprint(b[2])", Answer: "c"},
	{Prompt: "What is the output of this code?\nx = 5\ny = 2\nprint(x % y)", Answer: "1"},
	{Prompt: "What does this JavaScript code return?\nlet arr = [10, 20, 30]; console.log(arr[1]);", Answer: "20"},
	{Prompt: "In Python, what's the result of 'Hello'[1]?", Answer: "e"},
	{Prompt: "What's the output of this code?\nprint(len('programming'))", Answer: "11"},
	{Prompt: "What will this JavaScript code output (ignore case)?\nconsole.log(typeof 42);", Answer: "number"},
	{Prompt: "Which keyword is used to define a function in Python?", Answer: "def"},
	{Prompt: "What does this JavaScript code return?\nconsole.log('5' + 3);", Answer: "53"},
	{Prompt: "What will this Python code output?\na = [1, 2, 3]\nprint(a[-1])", Answer: "3"},
	{Prompt: "Which symbol is used for single-line comments in Python?", Answer: "#"},
	{Prompt: "What will this JavaScript code output?\nconsole.log(10 == '10');", Answer: "true"},
	{Prompt: "What is the result of this Python expression (ignore case)?\nprint(bool(0))", Answer: "False"},
}

type staticQuestionBank struct {
	questions []models.Question
}

// NewQuestionBank picks uniformly from questions, or from the built-in
// programming questions when the list is empty.
func NewQuestionBank(questions []models.Question) QuestionBank {
	if len(questions) == 0 {
		questions = defaultQuestions
	}
	cp := make([]models.Question, len(questions))
	copy(cp, questions)
	return &staticQuestionBank{questions: cp}
}

func (b *staticQuestionBank) Pick() models.Question {
	return b.questions[rand.Intn(len(b.questions))]
}
