package duplication

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duplikit/duplikit/models"
)

func TestSerializeEmitsEssentialFields(t *testing.T) {
	g := models.UserGoals{
		DailyContacts:  5,
		DailyFollowUps: 3,
		DailyPosts:     2,
		MonthlyIncome:  "5000",
		CompanyName:    "Acme",
		SponsorName:    "Jordan",
		ProductNiche:   "wellness",
		TeamChallenge:  "Grow 10%",
	}

	token := Serialize(g)
	assert.Equal(t, "c:5|f:3|n:Acme|s:Jordan|t:Grow%2010%25", token)

	// Income, niche and the post target never leave the device.
	assert.NotContains(t, token, "i:")
	assert.NotContains(t, token, "h:")
	assert.NotContains(t, token, "p:")
}

func TestSerializeOmitsEmptyStrings(t *testing.T) {
	g := models.UserGoals{DailyContacts: 5, DailyFollowUps: 3}
	assert.Equal(t, "c:5|f:3", Serialize(g))
}

func TestRoundTrip(t *testing.T) {
	g := models.UserGoals{
		DailyContacts:  8,
		DailyFollowUps: 4,
		CompanyName:    "Acme Wellness",
		SponsorName:    "Jordan Lee",
		TeamChallenge:  "90-day sprint",
	}

	decoded := Deserialize(Serialize(g))
	require.NotNil(t, decoded)

	assert.Equal(t, 8, decoded.DailyContacts)
	assert.Equal(t, 4, decoded.DailyFollowUps)
	assert.Equal(t, "Acme Wellness", decoded.CompanyName)
	assert.Equal(t, "Jordan Lee", decoded.SponsorName)
	assert.Equal(t, "90-day sprint", decoded.TeamChallenge)

	// Fields absent from the token keep their defaults.
	assert.Equal(t, 1, decoded.DailyPosts)
	assert.Equal(t, "", decoded.MonthlyIncome)
}

func TestDeserializeEmptyToken(t *testing.T) {
	assert.Nil(t, Deserialize(""))
	assert.Nil(t, Deserialize("   "))
}

func TestDeserializeGarbage(t *testing.T) {
	assert.Nil(t, Deserialize("not-a-token"))
	assert.Nil(t, Deserialize("x:1|y:2|z:3"))
	assert.Nil(t, Deserialize("|||"))
}

func TestDeserializeUnknownKeysIgnored(t *testing.T) {
	decoded := Deserialize("c:5|zz:whatever|f:3")
	require.NotNil(t, decoded)
	assert.Equal(t, 5, decoded.DailyContacts)
	assert.Equal(t, 3, decoded.DailyFollowUps)
}

func TestDeserializeBadNumbersBecomeZero(t *testing.T) {
	decoded := Deserialize("c:abc|f:-2")
	require.NotNil(t, decoded)
	assert.Equal(t, 0, decoded.DailyContacts)
	assert.Equal(t, 0, decoded.DailyFollowUps)
}

func TestDeserializeDecodesAllShortKeys(t *testing.T) {
	decoded := Deserialize("c:1|f:2|p:3|i:5000|n:Acme|s:Jo|h:skin|t:push")
	require.NotNil(t, decoded)
	assert.Equal(t, 1, decoded.DailyContacts)
	assert.Equal(t, 2, decoded.DailyFollowUps)
	assert.Equal(t, 3, decoded.DailyPosts)
	assert.Equal(t, "5000", decoded.MonthlyIncome)
	assert.Equal(t, "Acme", decoded.CompanyName)
	assert.Equal(t, "Jo", decoded.SponsorName)
	assert.Equal(t, "skin", decoded.ProductNiche)
	assert.Equal(t, "push", decoded.TeamChallenge)
}

func TestShareLink(t *testing.T) {
	g := models.UserGoals{DailyContacts: 5, DailyFollowUps: 3}

	link := ShareLink("https://coach.example.com/", g)
	assert.Equal(t, "https://coach.example.com/?dup=c:5|f:3", link)

	// Trailing slash handling does not double up.
	assert.True(t, strings.HasPrefix(ShareLink("https://coach.example.com", g), "https://coach.example.com/?dup="))
}
