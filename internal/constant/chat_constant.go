package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

const ChatGreeting = "Hi! I'm your academic advising assistant. Ask me about courses, prerequisites, eligibility, semester planning or graduation."
