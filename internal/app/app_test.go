package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jmdict/internal/config"
	"github.com/heartmarshall/jmdict/internal/domain"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY v1 "Ichidan verb">
<!ENTITY n "noun (common) (futsuumeishi)">
]>
<JMdict>
<entry>
<ent_seq>12345</ent_seq>
<k_ele><keb>食べる</keb><ke_pri>ichi1</ke_pri></k_ele>
<r_ele><reb>たべる</reb></r_ele>
<sense><pos>&v1;</pos><gloss xml:lang="eng">to eat</gloss></sense>
</entry>
<entry>
<ent_seq>1000220</ent_seq>
<k_ele><keb>明白</keb></k_ele>
<r_ele><reb>めいはく</reb></r_ele>
<sense><pos>&n;</pos><gloss>obvious</gloss></sense>
</entry>
</JMdict>
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "JMdict_e.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestRun_LogsStatsWithRunID(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.JMdictConfig{Path: writeSample(t, sampleDoc)}

	result, err := Run(context.Background(), testLogger(&logs), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Entries)
	out := logs.String()
	assert.Contains(t, out, `"msg":"parse completed"`)
	assert.Contains(t, out, `"entries":2`)
	assert.Contains(t, out, `"run_id":"`)
}

func TestRun_DumpWritesJSONLines(t *testing.T) {
	var logs, out bytes.Buffer
	cfg := config.JMdictConfig{Path: writeSample(t, sampleDoc), Dump: true}

	_, err := Run(context.Background(), testLogger(&logs), cfg, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first domain.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, uint32(12345), first.ID)
	assert.Equal(t, "食べる", first.PrimaryText())
	assert.Contains(t, lines[0], "食べる")
}

func TestRun_ParseError(t *testing.T) {
	var logs bytes.Buffer
	doc := `<JMdict><entry><ent_seq>1</ent_seq></entry></JMdict>`
	cfg := config.JMdictConfig{Path: writeSample(t, doc)}

	_, err := Run(context.Background(), testLogger(&logs), cfg, nil)
	require.ErrorIs(t, err, domain.ErrNoReadings)
	assert.Contains(t, logs.String(), `"msg":"parse failed"`)
}

func TestRun_MissingPath(t *testing.T) {
	var logs bytes.Buffer

	_, err := Run(context.Background(), testLogger(&logs), config.JMdictConfig{}, nil)
	assert.Error(t, err)
}

func TestRun_CanceledContext(t *testing.T) {
	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testLogger(&logs), config.JMdictConfig{Path: "unused"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
