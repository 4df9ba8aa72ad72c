package mentions

// canonicalCoin pins a symbol to a specific CoinGecko ID so that ticker
// collisions (dozens of listings share short symbols) resolve to the
// best-known coin, plus a display name for output.
type canonicalCoin struct {
	GeckoID string
	Display string
}

var canonicalSymbols = map[string]canonicalCoin{
	"BTC":   {"bitcoin", "Bitcoin"},
	"ETH":   {"ethereum", "Ethereum"},
	"SOL":   {"solana", "Solana"},
	"ADA":   {"cardano", "Cardano"},
	"DOGE":  {"dogecoin", "Dogecoin"},
	"LINK":  {"chainlink", "Chainlink"},
	"XRP":   {"ripple", "XRP"},
	"LTC":   {"litecoin", "Litecoin"},
	"BCH":   {"bitcoin-cash", "Bitcoin Cash"},
	"XLM":   {"stellar", "Stellar"},
	"DOT":   {"polkadot", "Polkadot"},
	"AVAX":  {"avalanche-2", "Avalanche"},
	"MATIC": {"matic-network", "Polygon (MATIC)"},
	"TRX":   {"tron", "TRON"},
	"ATOM":  {"cosmos", "Cosmos"},
	"ETC":   {"ethereum-classic", "Ethereum Classic"},
	"UNI":   {"uniswap", "Uniswap"},
	"AAVE":  {"aave", "Aave"},
	"ARB":   {"arbitrum", "Arbitrum"},
	"OP":    {"optimism", "Optimism"},
	"INJ":   {"injective-protocol", "Injective"},
	"SUI":   {"sui", "Sui"},
	"APT":   {"aptos", "Aptos"},
	"TON":   {"toncoin", "Toncoin"},
	"FTM":   {"fantom", "Fantom"},
	"ALGO":  {"algorand", "Algorand"},
	"HBAR":  {"hedera-hashgraph", "Hedera"},
	"RUNE":  {"thorchain", "THORChain"},
	"NEO":   {"neo", "NEO"},
	"EGLD":  {"elrond-erd-2", "MultiversX (EGLD)"},
	"KAS":   {"kaspa", "Kaspa"},
	"TIA":   {"celestia", "Celestia"},
	"SEI":   {"sei-network", "Sei"},
	"NEAR":  {"near", "NEAR"},
	"BNB":   {"binancecoin", "BNB"},
	"SHIB":  {"shiba-inu", "Shiba Inu"},
	"XMR":   {"monero", "Monero"},
	"FIL":   {"filecoin", "Filecoin"},
	"ICP":   {"internet-computer", "Internet Computer"},
	"GRT":   {"the-graph", "The Graph"},
	"FET":   {"fetch-ai", "Fetch.ai"},
	"LDO":   {"lido-dao", "Lido DAO"},
	"RPL":   {"rocket-pool", "Rocket Pool"},
	"MKR":   {"maker", "Maker"},
	"COMP":  {"compound-governance-token", "Compound"},
	"SNX":   {"synthetix-network-token", "Synthetix"},
	"CRV":   {"curve-dao-token", "Curve DAO"},
	"CVX":   {"convex-finance", "Convex Finance"},
	"GMX":   {"gmx", "GMX"},
	"DYDX":  {"dydx", "dYdX"},
	"IMX":   {"immutable-x", "Immutable"},
	"SAND":  {"the-sandbox", "The Sandbox"},
	"MANA":  {"decentraland", "Decentraland"},
	"APE":   {"apecoin", "ApeCoin"},
	"RNDR":  {"render-token", "Render"},
	"PEPE":  {"pepe", "PEPE"},
	"FLOKI": {"floki", "Floki"},
	"BONK":  {"bonk", "BONK"},
	"WIF":   {"dogwifcoin", "dogwifhat"},
	"JUP":   {"jupiter-exchange-solana", "Jupiter"},
	"PYTH":  {"pyth-network", "Pyth Network"},
	"JTO":   {"jito-governance-token", "Jito"},
	"STRK":  {"starknet", "Starknet"},
	"BLUR":  {"blur", "Blur"},
	"CHZ":   {"chiliz", "Chiliz"},
	"ENJ":   {"enjincoin", "Enjin"},
	"ZRX":   {"0x", "0x"},
	"BAT":   {"basic-attention-token", "Basic Attention Token"},
	"ZEC":   {"zcash", "Zcash"},
	"DASH":  {"dash", "Dash"},
	"KAVA":  {"kava", "Kava"},
	"KDA":   {"kadena", "Kadena"},
	"KSM":   {"kusama", "Kusama"},
	"ROSE":  {"oasis-network", "Oasis Network"},
	"STX":   {"stacks", "Stacks"},
	"MINA":  {"mina-protocol", "Mina"},
	"AR":    {"arweave", "Arweave"},
	"ASTR":  {"astar", "Astar"},
	"OSMO":  {"osmosis", "Osmosis"},
	"SKL":   {"skale", "SKALE"},
	"CFX":   {"conflux-token", "Conflux"},
	"XDC":   {"xinfin-network", "XDC Network"},
	"TFUEL": {"theta-fuel", "Theta Fuel"},
	"THETA": {"theta-token", "Theta Network"},
	"BTT":   {"bittorrent", "BitTorrent"},
	"OKB":   {"okb", "OKB"},
	"HT":    {"huobi-token", "HT"},
	"CRO":   {"crypto-com-chain", "Cronos"},
	"QNT":   {"quant-network", "Quant"},
	"RSR":   {"reserve-rights-token", "Reserve Rights"},
	"NEXO":  {"nexo", "Nexo"},
}

// bareSymbols may match without a $ prefix, in any case. Everything outside
// this whitelist needs either a cash-tag or an ALL-CAPS token to count.
var bareSymbols = map[string]struct{}{
	"BTC": {}, "ETH": {}, "BNB": {}, "SOL": {}, "ADA": {}, "XRP": {}, "DOGE": {}, "TRX": {}, "TON": {}, "AVAX": {},
	"DOT": {}, "MATIC": {}, "LTC": {}, "BCH": {}, "XLM": {}, "SHIB": {}, "LINK": {}, "ATOM": {}, "ETC": {}, "XMR": {},
	"FIL": {}, "ICP": {}, "APT": {}, "SUI": {}, "ARB": {}, "OP": {}, "INJ": {}, "NEAR": {}, "ALGO": {}, "HBAR": {},
	"AAVE": {}, "UNI": {}, "LDO": {}, "RPL": {}, "MKR": {}, "COMP": {}, "SNX": {}, "CRV": {}, "CVX": {}, "GMX": {},
	"DYDX": {}, "IMX": {}, "SAND": {}, "MANA": {}, "APE": {}, "GRT": {}, "FET": {}, "RNDR": {}, "KAS": {}, "TIA": {},
	"SEI": {}, "PEPE": {}, "FLOKI": {}, "BONK": {}, "WIF": {}, "JUP": {}, "PYTH": {}, "JTO": {}, "STRK": {}, "BLUR": {},
	"CHZ": {}, "ENJ": {}, "ZRX": {}, "BAT": {}, "ZEC": {}, "DASH": {}, "KAVA": {}, "KDA": {}, "KSM": {}, "ROSE": {},
	"RUNE": {}, "EGLD": {}, "NEO": {}, "GALA": {}, "SFP": {}, "CAKE": {}, "STX": {}, "MINA": {}, "AR": {}, "ASTR": {},
	"OSMO": {}, "SKL": {}, "CFX": {}, "XDC": {}, "TFUEL": {}, "THETA": {}, "BTT": {}, "OKB": {}, "HT": {}, "CRO": {},
	"QNT": {}, "RSR": {}, "NEXO": {},
}

// fullNameSymbols may match by coin name, restricted to top coins whose
// names do not collide with ordinary English words.
var fullNameSymbols = map[string]struct{}{
	"BTC": {}, "ETH": {}, "SOL": {}, "ADA": {}, "XRP": {}, "DOGE": {}, "LINK": {}, "BNB": {}, "LTC": {}, "DOT": {},
	"AVAX": {}, "MATIC": {}, "TRX": {}, "ATOM": {}, "XLM": {}, "BCH": {}, "ETC": {}, "SHIB": {},
}

// extraFullNames adds safe synonyms and brand names. Generic ambiguous
// names ("ton", "near", "flow") are deliberately absent.
var extraFullNames = map[string][]string{
	"BTC":   {"bitcoin"},
	"ETH":   {"ethereum"},
	"SOL":   {"solana"},
	"ADA":   {"cardano"},
	"XRP":   {"ripple"},
	"DOGE":  {"dogecoin"},
	"LINK":  {"chainlink"},
	"BNB":   {"binance coin", "binancecoin"},
	"LTC":   {"litecoin"},
	"DOT":   {"polkadot"},
	"AVAX":  {"avalanche"},
	"MATIC": {"polygon"},
	"TRX":   {"tron"},
	"ATOM":  {"cosmos"},
	"XLM":   {"stellar"},
	"BCH":   {"bitcoin cash"},
	"ETC":   {"ethereum classic"},
	"SHIB":  {"shiba inu"},
}

// botNamePatterns flags authors whose usernames look automated.
var botNamePatterns = []string{"automoderator", "bot", "tip", "price", "moon", "giveaway", "airdrop"}
