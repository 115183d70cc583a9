// Package duplication implements the compact goal-sharing token carried in
// the `dup` URL query parameter. A sponsor serializes their plan, sends the
// link, and the recipient's app seeds its goals from the token.
package duplication

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/duplikit/duplikit/models"
)

// Short keys used inside tokens. The map covers every shareable field even
// though serialization only emits the essential subset; decoding accepts
// all of them so older links keep working.
const (
	keyContacts  = "c"
	keyFollowUps = "f"
	keyPosts     = "p"
	keyIncome    = "i"
	keyCompany   = "n"
	keySponsor   = "s"
	keyNiche     = "h"
	keyChallenge = "t"
)

// Param is the query parameter carrying a token.
const Param = "dup"

// essential lists the fields emitted by Serialize, in token order. The
// subset is narrower than the decode map on purpose: income and niche are
// considered personal and never leave the device that set them.
var essential = []string{keyContacts, keyFollowUps, keyCompany, keySponsor, keyChallenge}

// Serialize encodes the shareable subset of goals as pipe-delimited
// key:value pairs. Empty string fields are omitted.
//
// Values are percent-encoded, then "%7C" is rewritten back to a literal "|"
// so links stay readable. A value that legitimately contains a pipe will
// therefore split wrong on decode; that ambiguity is inherited behavior and
// deliberately not fixed here.
func Serialize(g models.UserGoals) string {
	pairs := make([]string, 0, len(essential))
	for _, key := range essential {
		var val string
		switch key {
		case keyContacts:
			val = strconv.Itoa(g.DailyContacts)
		case keyFollowUps:
			val = strconv.Itoa(g.DailyFollowUps)
		case keyCompany:
			val = g.CompanyName
		case keySponsor:
			val = g.SponsorName
		case keyChallenge:
			val = g.TeamChallenge
		}
		if val == "" {
			continue
		}
		enc := strings.ReplaceAll(url.PathEscape(val), "%7C", "|")
		pairs = append(pairs, key+":"+enc)
	}
	return strings.Join(pairs, "|")
}

// Deserialize parses a token back into a full UserGoals seeded from
// defaults. It returns nil when the token is empty or yields no recognized
// fields; callers treat nil as "no incoming duplication", not an error.
func Deserialize(token string) *models.UserGoals {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	goals := models.DefaultGoals()
	recognized := 0

	for _, segment := range strings.Split(token, "|") {
		kv := strings.SplitN(segment, ":", 2)
		if len(kv) != 2 {
			continue
		}
		val, err := url.PathUnescape(kv[1])
		if err != nil {
			continue
		}
		switch kv[0] {
		case keyContacts:
			goals.DailyContacts = parseCount(val)
		case keyFollowUps:
			goals.DailyFollowUps = parseCount(val)
		case keyPosts:
			goals.DailyPosts = parseCount(val)
		case keyIncome:
			goals.MonthlyIncome = val
		case keyCompany:
			goals.CompanyName = val
		case keySponsor:
			goals.SponsorName = val
		case keyNiche:
			goals.ProductNiche = val
		case keyChallenge:
			goals.TeamChallenge = val
		default:
			continue
		}
		recognized++
	}

	if recognized == 0 {
		return nil
	}
	return &goals
}

// ShareLink builds the full shareable URL for a set of goals.
func ShareLink(baseURL string, g models.UserGoals) string {
	return strings.TrimRight(baseURL, "/") + "/?" + Param + "=" + Serialize(g)
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
