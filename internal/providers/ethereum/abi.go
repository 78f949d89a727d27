package ethereum

// TicketNFTABI is the subset of the deployed TicketNFT contract interface the marketplace calls
const TicketNFTABI = `[
	{"type":"function","name":"mintTicket","stateMutability":"payable","inputs":[{"name":"tokenURI","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"useTicket","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"resellTicket","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"ticketPrice","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"isUsed","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"originalPrice","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getApprovedPrice","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"TicketMinted","anonymous":false,"inputs":[{"name":"buyer","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true},{"name":"price","type":"uint256","indexed":false}]}
]`

const (
	methodMintTicket       = "mintTicket"
	methodUseTicket        = "useTicket"
	methodResellTicket     = "resellTicket"
	methodTicketPrice      = "ticketPrice"
	methodIsUsed           = "isUsed"
	methodOriginalPrice    = "originalPrice"
	methodGetApprovedPrice = "getApprovedPrice"
	methodTokenURI         = "tokenURI"
	methodOwnerOf          = "ownerOf"

	eventTicketMinted = "TicketMinted"
)
