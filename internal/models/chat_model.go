package models

// Chat message roles as they appear on the wire and in the generation API.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of a reading conversation. The conversation is
// owned by the client session; the full ordered history is replayed on
// every advanced-reading request rather than persisted server-side.
type ChatMessage struct {
	Role   string   `json:"role"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"` // data-URI encoded inline images
}

// HoroscopeData carries the free-text birth details for a single-shot
// horoscope reading.
type HoroscopeData struct {
	DOB string `json:"dob" binding:"required"` // date of birth
	TOB string `json:"tob" binding:"required"` // time of birth
	POB string `json:"pob" binding:"required"` // place of birth
}

// PorondamData carries the details for a marriage compatibility reading.
type PorondamData struct {
	GroomName      string `json:"groomName" binding:"required"`
	GroomNakshatra string `json:"groomNakshatra" binding:"required"`
	BrideName      string `json:"brideName" binding:"required"`
	BrideNakshatra string `json:"brideNakshatra" binding:"required"`
}
