package model

// SessionState tracks how (and whether) the current user was resolved.
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticating  SessionState = "authenticating"
	SessionRemote          SessionState = "remote"
	SessionLocalFallback   SessionState = "local_fallback"
)

type Preferences struct {
	Notifications bool     `json:"notifications"`
	Regions       []string `json:"regions"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SavedChat struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Messages []ChatMessage `json:"messages"`
	Date     string        `json:"date"`
}

type User struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Favorites     []string          `json:"favorites"`
	Preferences   Preferences       `json:"preferences"`
	SavedChats    []SavedChat       `json:"savedChats"`
	SavedAnalyses []PodcastAnalysis `json:"savedAnalyses"`
}
