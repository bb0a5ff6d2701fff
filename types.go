package initdata

// ChatType identifies the kind of chat a Mini App was opened from.
type ChatType string

const (
	ChatTypeSender     ChatType = "sender"
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

// User describes a Telegram user or bot as delivered in init data.
type User struct {
	ID                    int64  `json:"id"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name,omitempty"`
	Username              string `json:"username,omitempty"`
	LanguageCode          string `json:"language_code,omitempty"`
	IsBot                 bool   `json:"is_bot,omitempty"`
	IsPremium             bool   `json:"is_premium,omitempty"`
	AddedToAttachmentMenu bool   `json:"added_to_attachment_menu,omitempty"`
	AllowsWriteToPM       bool   `json:"allows_write_to_pm,omitempty"`
	PhotoURL              string `json:"photo_url,omitempty"`
}

// Chat describes the chat a Mini App was launched from via the attachment menu.
type Chat struct {
	ID       int64    `json:"id"`
	Type     ChatType `json:"type"`
	Title    string   `json:"title"`
	Username string   `json:"username,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
}

// InitData is the decoded form of the data Telegram transfers to a Mini App
// when it is opened. Only AuthDate and Hash are always present; everything
// else depends on how the Mini App was launched.
// See: https://core.telegram.org/bots/webapps#webappinitdata
type InitData struct {
	// Unix time when the form was opened.
	AuthDate UnixTime `json:"auth_date"`

	// Time in seconds after which a message can be sent via answerWebAppQuery.
	CanSendAfter int `json:"can_send_after,omitempty"`

	// Chat the bot was launched from via the attachment menu. Present for
	// supergroups, channels and group chats.
	Chat *Chat `json:"chat,omitempty"`

	// Type of the chat from which the Mini App was opened. Present only for
	// Mini Apps launched from direct links.
	ChatType ChatType `json:"chat_type,omitempty"`

	// Global identifier of the chat from which the Mini App was opened.
	// Present only for Mini Apps launched from a direct link.
	ChatInstance int64 `json:"chat_instance,omitempty"`

	// Hash of all passed parameters, used for first-party validation.
	Hash string `json:"hash"`

	// Unique identifier of the Mini App session, required for sending
	// messages via answerWebAppQuery.
	QueryID string `json:"query_id,omitempty"`

	// Chat partner of the current user in the chat where the bot was
	// launched via the attachment menu. Present only for private chats.
	Receiver *User `json:"receiver,omitempty"`

	// Value of the startattach parameter, passed via link.
	StartParam string `json:"start_param,omitempty"`

	// The current user.
	User *User `json:"user,omitempty"`

	// Signature of all passed parameters except hash, used for third-party
	// validation.
	Signature string `json:"signature,omitempty"`
}
