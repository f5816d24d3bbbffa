package telegram

const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgNoConversation = "There is no game in progress. Send /start to play."
	msgUnknownCommand = "Unknown command. Available commands:\n\n" +
		"/start - start a new game\n" +
		"/hint - get a hint for the current question\n" +
		"/repeat - repeat the question\n" +
		"/skip - skip the question\n" +
		"/dontknow - reveal the answer\n" +
		"/help - how to play\n" +
		"/quit - stop playing"
)
