package usecase

import (
	"regexp"
	"strings"

	"github.com/x-xyz/salesbot/base/cadence"
)

var qualifiedAssetRe = regexp.MustCompile(`^A\.[0-9a-fA-F]{16}\.[A-Za-z_][A-Za-z0-9_]*\.NFT$`)

// IsQualifiedAssetType matches A.<address>.<Contract>.NFT
func IsQualifiedAssetType(s string) bool {
	return qualifiedAssetRe.MatchString(s)
}

// extractor pulls one candidate out of a decoded payload, "" when absent
type extractor struct {
	name string
	fn   func(p *cadence.Payload) string
}

func fieldString(name string) extractor {
	return extractor{name, func(p *cadence.Payload) string {
		if s := p.String(name); s != "" {
			return s
		}
		// nftType arrives either as a string or as a decoded Type value
		v, _ := p.Value(name)
		return cadence.ToString(cadence.Lookup(v, "typeID"))
	}}
}

func nestedString(path ...string) extractor {
	return extractor{strings.Join(path, "."), func(p *cadence.Payload) string {
		v, ok := p.Value(path[0])
		if !ok {
			return ""
		}
		return cadence.ToString(cadence.Lookup(v, path[1:]...))
	}}
}

// typeExtractors are tried in order
var typeExtractors = []extractor{
	fieldString("type"),
	fieldString("nftType"),
	fieldString("typeID"),
	nestedString("nftType", "typeID"),
}

var idExtractors = []extractor{
	fieldString("id"),
	fieldString("nftID"),
	fieldString("nftId"),
	fieldString("tokenId"),
}

func firstOf(p *cadence.Payload, extractors []extractor) string {
	for _, e := range extractors {
		if s := e.fn(p); s != "" {
			return s
		}
	}
	return ""
}

var transferSuffixes = []string{".Deposit", ".Deposited", ".Withdraw", ".Withdrawn", ".Minted", ".Mint"}

// isTransferEvent selects the events worth decoding during refinement
func isTransferEvent(eventType string) bool {
	for _, s := range transferSuffixes {
		if strings.HasSuffix(eventType, s) {
			return true
		}
	}
	return strings.Contains(eventType, "NFT") || strings.Contains(eventType, "NonFungibleToken")
}
