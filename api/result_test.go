package api_test

import (
	"encoding/json"
	"testing"

	"github.com/korylprince/bdus-client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		body  string
		empty bool
	}{
		{`{"a":"b"}`, false},
		{` ["a", "b"] `, false},
		{`{}`, true},
		{`[]`, true},
		{`"string"`, true},
		{`12`, true},
		{`null`, true},
		{`true`, true},
		{`not json`, true},
		{`{"a":`, true},
		{`{"a":"b"} {"c":"d"}`, true},
		{`{"a":1}]`, true},
		{`["x"]}`, true},
		{`{"a":1}}`, true},
		{``, true},
	}

	for _, test := range tests {
		res := api.NewResult([]byte(test.body))
		assert.Equal(t, test.empty, res.Empty(), "body: %s", test.body)
	}
}

func TestResultValue(t *testing.T) {
	res := api.NewResult([]byte(`{"id": 12, "tags": ["a"]}`))
	m := res.Map()
	require.NotNil(t, m)
	assert.Equal(t, json.Number("12"), m["id"])
	assert.Nil(t, res.Slice())

	res = api.NewResult([]byte(`["a"]`))
	assert.Equal(t, []interface{}{"a"}, res.Slice())
	assert.Nil(t, res.Map())
}

func TestResultDecodeEmpty(t *testing.T) {
	v := map[string]string{"keep": "me"}
	require.NoError(t, api.EmptyResult().Decode(&v))
	assert.Equal(t, map[string]string{"keep": "me"}, v)
}

func TestResultMarshalJSON(t *testing.T) {
	buf, err := json.Marshal(api.NewResult([]byte(` {"a": 1} `)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(buf))

	buf, err = json.Marshal(api.EmptyResult())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(buf))

	//trailing garbage must never produce bytes json.Marshal rejects
	buf, err = json.Marshal(api.NewResult([]byte(`{"inv_no":"1"}]`)))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(buf))

	var nilRes *api.Result
	assert.True(t, nilRes.Empty())
}
