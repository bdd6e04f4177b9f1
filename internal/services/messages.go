package services

import (
	"fmt"
	"html"
	"time"
)

func welcomeText(name, question string, window time.Duration) string {
	return fmt.Sprintf(
		"Welcome <b>%s</b>! To verify you're a programmer, please answer this question within <b>%d seconds</b>:\n\n%s\n\nJust send your answer as a reply.",
		html.EscapeString(name), int(window.Seconds()), html.EscapeString(question),
	)
}

func successText(name string) string {
	return fmt.Sprintf("Congratulations! <b>%s</b> passed the verification and can now participate in the chat.", html.EscapeString(name))
}

func wrongAnswerText(name string) string {
	return fmt.Sprintf("<b>%s</b> failed the verification, has been permanently banned from the chat, and all their messages have been deleted.", html.EscapeString(name))
}

func timeoutText(name string) string {
	return fmt.Sprintf("User <b>%s</b> didn't answer the verification question in time, and has been permanently banned from the chat.", html.EscapeString(name))
}

func restoreFailedText(name string) string {
	return fmt.Sprintf("<b>%s</b> passed the verification, but I couldn't lift their restrictions. Please check my permissions.", html.EscapeString(name))
}

func wrongAnswerBanFailedText(name string) string {
	return fmt.Sprintf("<b>%s</b> failed the verification, but I couldn't ban them. Please check my permissions.", html.EscapeString(name))
}

func timeoutBanFailedText(name string) string {
	return fmt.Sprintf("<b>%s</b> didn't answer the verification question in time, but I couldn't ban them. Please check my permissions.", html.EscapeString(name))
}

func restrictFailedText(name string) string {
	return fmt.Sprintf("I couldn't restrict the new user <b>%s</b>. Please check my permissions.", html.EscapeString(name))
}

// Replies to /start and /help.
const (
	StartText = "Hi! I am a verification bot that checks programming knowledge of new chat members."
	HelpText  = "This bot automatically challenges new members with a programming question to verify their knowledge."
)
