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
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksummed",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidTokenId() {
	tests := []struct {
		desc       string
		tokenId    string
		expIsValid bool
	}{
		{
			desc:       "small id",
			tokenId:    "7",
			expIsValid: true,
		},
		{
			desc:       "id above 2^53",
			tokenId:    "99194853094755497178469",
			expIsValid: true,
		},
		{
			desc:       "negative",
			tokenId:    "-1",
			expIsValid: false,
		},
		{
			desc:       "hex",
			tokenId:    "0x1f",
			expIsValid: false,
		},
		{
			desc:       "empty",
			tokenId:    "",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidTokenId(t.tokenId), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
