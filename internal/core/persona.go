package core

import "math/rand/v2"

// Bot persona names; one is picked per session unless the profile pins one.
var BotNames = []string{
	"Elsa", "Alma", "Freja", "Linnea", "Klara", "Elin",
	"Axel", "Leo", "Emil", "Nils", "Erik", "Johan",
	"Robin", "Alex", "Sam", "Kim", "Mika", "Lukas", "Svea",
}

var WelcomeMessages = []string{
	"👋 Hello there! I'm your Tech Support Assistant. How can I help you today?",
	"Hi! I'm here to help troubleshoot issues and answer your tech questions.",
	"Welcome! Need help fixing something or just have a quick tech question? I'm ready.",
	"Hi! I'm here to make tech support easy — what can I help you with today?",
}

func PickBotName() string {
	return BotNames[rand.IntN(len(BotNames))]
}

func PickWelcomeMessage() string {
	return WelcomeMessages[rand.IntN(len(WelcomeMessages))]
}
