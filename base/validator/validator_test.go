package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "oracle address",
			address:    "0xe385412159992e11",
			expIsValid: true,
		},
		{
			desc:       "evm address",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: false,
		},
		{
			desc:       "missing prefix",
			address:    "e385412159992e11",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestStructTag() {
	type cfg struct {
		Oracle string `validate:"required,flowaddr"`
	}
	v := New()
	s.NoError(v.Struct(cfg{Oracle: "0xe385412159992e11"}))
	s.Error(v.Struct(cfg{Oracle: "0x12"}))
	s.Error(v.Struct(cfg{}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
