package render

import (
	"bytes"
	"testing"

	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	data, err := JSON(sampleUnprefixed(t), sampleCBPrefixed(t))
	require.NoError(t, err)

	d := json.NewDecoder(bytes.NewReader(data))
	d.UseOrderedObject()
	var v interface{}
	require.NoError(t, d.Decode(&v))

	doc, ok := v.(json.OrderedObject)
	require.True(t, ok)
	require.Len(t, doc, 2)
	assert.Equal(t, "unprefixed", doc[0].Key)
	assert.Equal(t, "cbprefixed", doc[1].Key)

	un, ok := doc[0].Value.(json.OrderedObject)
	require.True(t, ok)
	var ids []string
	for _, m := range un {
		ids = append(ids, m.Key)
	}
	assert.Equal(t, []string{"LdHlMemSubA", "JrNzImm8", "Nop"}, ids)

	ld, ok := un[0].Value.(json.OrderedObject)
	require.True(t, ok)
	fields := make(map[string]interface{})
	for _, m := range ld {
		fields[m.Key] = m.Value
	}
	assert.Equal(t, "0x32", fields["code"])
	assert.Equal(t, "LD [HL-], A", fields["summary"])
	assert.Equal(t, []interface{}{}, un[2].Value.(json.OrderedObject)[3].Value)
}
