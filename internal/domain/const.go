package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://nftstorage.link"
	DEFAULT_STORAGE_API_URL = "https://api.nft.storage"

	// Chain constants
	HARDHAT_CHAIN_ID      = 31337 // 0x7a69
	DEFAULT_GAS_LIMIT     = 200000
	DEFAULT_MINT_PRICE    = "0.1"
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// IPFS_SCHEME is the URI prefix used for content-addressed ticket metadata
	IPFS_SCHEME = "ipfs://"
)
