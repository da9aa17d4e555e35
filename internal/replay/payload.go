package replay

import "encoding/json"

// SenderAccount is the sender block of synthetic deliveries.
type SenderAccount struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	NodeID    string `json:"node_id"`
	AvatarURL string `json:"avatar_url"`
	URL       string `json:"url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

// Sender is the fixed account every replayed delivery is attributed to.
var Sender = SenderAccount{
	Login:     "eduramirezh",
	ID:        1679647,
	NodeID:    "MDQ6VXNlcjE2Nzk2NDc=",
	AvatarURL: "https://avatars.githubusercontent.com/u/1679647?v=4",
	URL:       "https://api.github.com/users/eduramirezh",
	HTMLURL:   "https://github.com/eduramirezh",
	Type:      "User",
}

type runDelivery struct {
	Action       string          `json:"action"`
	WorkflowRun  json.RawMessage `json:"workflow_run"`
	Workflow     json.RawMessage `json:"workflow"`
	Repository   json.RawMessage `json:"repository"`
	Organization json.RawMessage `json:"organization"`
	Sender       SenderAccount   `json:"sender"`
}

type jobDelivery struct {
	Action       string          `json:"action"`
	WorkflowJob  json.RawMessage `json:"workflow_job"`
	Repository   json.RawMessage `json:"repository"`
	Organization json.RawMessage `json:"organization"`
	Sender       SenderAccount   `json:"sender"`
}
