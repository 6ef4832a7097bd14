package model

// AbsentValue marks a field the likes API response did not contain.
const AbsentValue = "N/A"

// LikeInfo is the parsed result of a likes API response. Every field is
// either a value extracted from the response or AbsentValue.
type LikeInfo struct {
	Name        string
	UID         string
	Level       string
	Exp         string
	LikesBefore string
	LikesAfter  string
	LikesGiven  string
}
