package types

// Chain ids as the token-security oracle expects them.
var chainIDs = map[string]string{
	"ethereum": "1",
	"bsc":      "56",
	"polygon":  "137",
	"base":     "8453",
}

const DefaultChain = "ethereum"

// ChainID maps a lower-cased chain name to its numeric id, falling back to
// ethereum for unrecognized chains.
func ChainID(chain string) string {
	if id, ok := chainIDs[chain]; ok {
		return id
	}
	return chainIDs[DefaultChain]
}
