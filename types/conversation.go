package types

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one logged exchange unit of the conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
