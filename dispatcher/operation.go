package dispatcher

// Operation is one of Encode, Decode, WalletToBase58 or Base58ToWallet.
type Operation interface {
	operation()
}

// Encode encodes the Input text, or the bytes of the Input hex string if Hex is set, to base58.
type Encode struct {
	Input string
	Hex   bool
}

// Decode decodes the base58 Input and prints it as text, or as hex string if Hex is set.
type Decode struct {
	Input string
	Hex   bool
}

// WalletToBase58 reads the JSON byte array wallet File and encodes it to base58 private key.
type WalletToBase58 struct {
	File string
}

// Base58ToWallet decodes the base58 private key Input to JSON byte array wallet.
// The wallet is saved to Output or printed if Output is empty.
type Base58ToWallet struct {
	Input  string
	Output string
}

func (Encode) operation()         {}
func (Decode) operation()         {}
func (WalletToBase58) operation() {}
func (Base58ToWallet) operation() {}
