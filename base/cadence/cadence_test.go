package cadence

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

const withdrawnEvent = `{"type":"Event","value":{"id":"A.1d7e57aa55817448.NonFungibleToken.Withdrawn","fields":[
	{"name":"type","value":{"type":"String","value":"A.edf9df96c92f4595.Pinnacle.NFT"}},
	{"name":"id","value":{"type":"UInt64","value":"42"}},
	{"name":"uuid","value":{"type":"UInt64","value":"1000"}},
	{"name":"from","value":{"type":"Optional","value":{"type":"Address","value":"0x00000000000000a1"}}},
	{"name":"providerUUID","value":{"type":"UInt64","value":"7"}}
]}}`

type cadenceSuite struct {
	suite.Suite
}

func TestCadence(t *testing.T) {
	suite.Run(t, new(cadenceSuite))
}

func (s *cadenceSuite) TestDecodePayloadComposite() {
	p, ok := DecodePayload(b64(withdrawnEvent))
	s.True(ok)
	s.Equal(ShapeEventComposite, p.Shape)
	s.Equal("A.1d7e57aa55817448.NonFungibleToken.Withdrawn", p.TypeID)
	s.Equal("42", p.String("id"))
	s.Equal("0x00000000000000a1", p.Address("from"))
	s.Equal("A.edf9df96c92f4595.Pinnacle.NFT", p.String("type"))
	s.Equal("", p.Address("to"))
}

func (s *cadenceSuite) TestDecodePayloadFlat() {
	p, ok := DecodePayload(b64(`{"id":42,"to":{"value":{"value":"0x00000000000000b2"}}}`))
	s.True(ok)
	s.Equal(ShapeFlatObject, p.Shape)
	s.Equal("42", p.String("id"))
	s.Equal("0x00000000000000b2", p.Address("to"))
}

func (s *cadenceSuite) TestDecodePayloadFailures() {
	cases := map[string]string{
		"empty":      "",
		"not base64": "%%%",
		"not json":   b64("hello"),
		"not utf8":   base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
	}
	for desc, in := range cases {
		p, ok := DecodePayload(in)
		s.False(ok, desc)
		s.Nil(p, desc)
	}

	p, ok := DecodePayload(b64(`[1,2,3]`))
	s.True(ok)
	s.Equal(ShapeUnknown, p.Shape)
	s.Empty(p.Values())
}

func (s *cadenceSuite) TestDecodeValues() {
	cases := []struct {
		desc string
		in   string
		exp  interface{}
	}{
		{"ufix64", `{"type":"UFix64","value":"0.35000000"}`, "0.35000000"},
		{"nil optional", `{"type":"Optional","value":null}`, nil},
		{"bool", `{"type":"Bool","value":true}`, true},
		{"void", `{"type":"Void"}`, nil},
		{"array", `{"type":"Array","value":[{"type":"UFix64","value":"0.5"},{"type":"UInt64","value":"1"}]}`, []interface{}{"0.5", "1"}},
		{"dictionary", `{"type":"Dictionary","value":[{"key":{"type":"String","value":"name"},"value":{"type":"String","value":"Pack"}}]}`,
			map[string]interface{}{"name": "Pack"}},
		{"struct", `{"type":"Struct","value":{"id":"s.X.MyTopShotData","fields":[{"name":"serialNumber","value":{"type":"UInt32","value":"12"}}]}}`,
			map[string]interface{}{"serialNumber": "12"}},
		{"type object form", `{"type":"Type","value":{"staticType":{"kind":"Resource","typeID":"A.0b2a3299cc857e29.TopShot.NFT"}}}`,
			map[string]interface{}{"typeID": "A.0b2a3299cc857e29.TopShot.NFT"}},
		{"type string form", `{"type":"Type","value":{"staticType":"A.0b2a3299cc857e29.TopShot.NFT"}}`,
			map[string]interface{}{"typeID": "A.0b2a3299cc857e29.TopShot.NFT"}},
	}
	for _, c := range cases {
		v, err := Decode(json.RawMessage(c.in))
		s.NoError(err, c.desc)
		s.Equal(c.exp, v, c.desc)
	}

	_, err := Decode(json.RawMessage(`{"foo":1}`))
	s.ErrorIs(err, ErrNotCadence)
	_, err = Decode(json.RawMessage(`{"type":"Mystery","value":1}`))
	s.ErrorIs(err, ErrUnsupported)
}

func TestUnwrapAddress(t *testing.T) {
	req := require.New(t)
	req.Equal("0x1", UnwrapAddress("0x1"))
	req.Equal("0x1", UnwrapAddress(map[string]interface{}{"value": "0x1"}))
	req.Equal("0x1", UnwrapAddress(map[string]interface{}{"value": map[string]interface{}{"value": "0x1"}}))
	req.Equal("", UnwrapAddress(map[string]interface{}{"value": map[string]interface{}{"value": map[string]interface{}{"value": "0x1"}}}))
	req.Equal("", UnwrapAddress(nil))
}

func TestEncodeArguments(t *testing.T) {
	req := require.New(t)
	b, err := json.Marshal([]Raw{Address("0xe385412159992e11"), UInt64("42")})
	req.NoError(err)
	req.JSONEq(`[{"type":"Address","value":"0xe385412159992e11"},{"type":"UInt64","value":"42"}]`, string(b))
}

func TestIsCadence(t *testing.T) {
	req := require.New(t)
	v, ok := DecodeBase64JSON(b64(`{"type":"Dictionary","value":[]}`))
	req.True(ok)
	req.True(IsCadence(v))
	v, ok = DecodeBase64JSON(b64(`{"name":"Pack","imageUrl":"https://x"}`))
	req.True(ok)
	req.False(IsCadence(v))
}
