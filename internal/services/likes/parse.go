package likes

import (
	"regexp"

	"likebot/internal/domain/model"
)

// The likes API returns a semi-structured text blob with line-oriented
// markers. Each field is extracted independently so that any subset of
// fields may be absent without failing the whole parse. The line-bound
// fields require a trailing newline; only the likes given marker may sit
// at the very end of the text.
var (
	namePattern        = regexp.MustCompile(`- Name > (.*?)\n`)
	uidPattern         = regexp.MustCompile(`- Uid > (\d+)\n`)
	levelPattern       = regexp.MustCompile(`- Level > (\d+)\n`)
	expPattern         = regexp.MustCompile(`\[Exp :\s*(\d+)\]`)
	likesBeforePattern = regexp.MustCompile(`- Likes BeFore > (\d+)\n`)
	likesAfterPattern  = regexp.MustCompile(`- Likes After > (\d+)\n`)
	likesGivenPattern  = regexp.MustCompile(`- Likes Given > (\d+)`)
)

// ParseResponse extracts the known fields from a raw likes API response.
// Fields whose marker is missing are set to model.AbsentValue; the returned
// record is always fully populated.
func ParseResponse(raw string) model.LikeInfo {
	return model.LikeInfo{
		Name:        extract(namePattern, raw),
		UID:         extract(uidPattern, raw),
		Level:       extract(levelPattern, raw),
		Exp:         extract(expPattern, raw),
		LikesBefore: extract(likesBeforePattern, raw),
		LikesAfter:  extract(likesAfterPattern, raw),
		LikesGiven:  extract(likesGivenPattern, raw),
	}
}

func extract(pattern *regexp.Regexp, raw string) string {
	match := pattern.FindStringSubmatch(raw)
	if len(match) < 2 {
		return model.AbsentValue
	}
	return match[1]
}
