package jmdict

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jmdict/internal/domain"
)

func TestParseReading(t *testing.T) {
	src := openAt(t, `<r_ele>
<reb>たべる</reb>
<re_restr>食べる</re_restr>
<re_restr>喰べる</re_restr>
<re_inf>&ok;</re_inf>
<re_pri>ichi1</re_pri>
</r_ele>`, tagREle)
	rec := &Recorder{}

	rd, err := parseReading(src, rec)
	require.NoError(t, err)

	assert.Equal(t, domain.ReadingGroup{
		Text:         "たべる",
		RestrictedTo: []string{"食べる", "喰べる"},
		Categories:   []string{"ok"},
		Priorities:   []string{"ichi1"},
	}, rd)
	assert.Empty(t, rec.Warnings)
}

func TestParseReading_NoHeadword(t *testing.T) {
	src := openAt(t, `<r_ele><reb>アイスランド</reb><re_nokanji/></r_ele>`, tagREle)

	rd, err := parseReading(src, Discard)
	require.NoError(t, err)

	assert.True(t, rd.NoHeadword)
	assert.Empty(t, rd.RestrictedTo)
}

func TestParseReading_UnknownChild(t *testing.T) {
	src := openAt(t, `<r_ele><reb>ねこ</reb><re_pitch>1</re_pitch></r_ele>`, tagREle)
	rec := &Recorder{}

	rd, err := parseReading(src, rec)
	require.NoError(t, err)

	assert.Equal(t, "ねこ", rd.Text)
	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, tagREle, rec.Warnings[0].Parent)
}

func TestParseReading_TextInvariant(t *testing.T) {
	valid := []string{"ねこ", "ねこ じた", "ａ"}
	for _, reb := range valid {
		t.Run("valid "+reb, func(t *testing.T) {
			src := openAt(t, fmt.Sprintf("<r_ele><reb>%s</reb></r_ele>", reb), tagREle)
			rd, err := parseReading(src, Discard)
			require.NoError(t, err)
			assert.Equal(t, reb, rd.Text)
		})
	}

	padded := []string{" ねこ", "ねこ ", "\tねこ", "ねこ\n"}
	for _, reb := range padded {
		t.Run(fmt.Sprintf("padded %q", reb), func(t *testing.T) {
			src := openAt(t, fmt.Sprintf("<r_ele><reb>%s</reb></r_ele>", reb), tagREle)
			_, err := parseReading(src, Discard)
			require.ErrorIs(t, err, domain.ErrPaddedText)
		})
	}

	t.Run("empty", func(t *testing.T) {
		src := openAt(t, "<r_ele><re_pri>ichi1</re_pri></r_ele>", tagREle)
		_, err := parseReading(src, Discard)
		require.ErrorIs(t, err, domain.ErrEmptyText)
	})
}

func TestParseReading_MalformedCategory(t *testing.T) {
	src := openAt(t, `<r_ele><reb>ねこ</reb><re_inf>&ok;&ik;</re_inf></r_ele>`, tagREle)

	_, err := parseReading(src, Discard)
	require.ErrorIs(t, err, domain.ErrMalformedEntity)
}

func TestParseReading_RepeatedRebKeepsLast(t *testing.T) {
	src := openAt(t, `<r_ele><reb>ねこ</reb><reb>いぬ</reb></r_ele>`, tagREle)

	rd, err := parseReading(src, Discard)
	require.NoError(t, err)
	assert.Equal(t, "いぬ", rd.Text)
}
