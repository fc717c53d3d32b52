package dispatcher

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bartossh/base58cli/logger"
	"github.com/bartossh/base58cli/serializer"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Printer prints results and failures of the operation.
type Printer interface {
	Success(format string, a ...any)
	Info(format string, a ...any)
	Value(label, value string)
	Failure(err error)
	Block(text string)
}

// WalletFileOperator reads, saves and encodes JSON byte array wallets.
type WalletFileOperator interface {
	ReadWallet(path string) ([]byte, error)
	SaveWallet(path string, w []byte) error
	EncodeWallet(w []byte) (string, error)
}

// Dispatcher executes operations and reports the outcome.
type Dispatcher struct {
	files WalletFileOperator
	out   Printer
	log   logger.Logger
}

// New creates new Dispatcher.
func New(files WalletFileOperator, out Printer, log logger.Logger) Dispatcher {
	return Dispatcher{files: files, out: out, log: log}
}

// Run executes the operation.
// The error is printed and logged before it is returned, the caller decides only about the exit status.
func (d Dispatcher) Run(op Operation) error {
	var err error
	switch o := op.(type) {
	case Encode:
		err = d.encode(o)
	case Decode:
		err = d.decode(o)
	case WalletToBase58:
		err = d.walletToBase58(o)
	case Base58ToWallet:
		err = d.base58ToWallet(o)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}

	if err != nil {
		d.out.Failure(err)
		d.log.Error(err.Error())
		return err
	}
	return nil
}

func (d Dispatcher) encode(o Encode) error {
	raw := []byte(o.Input)
	if o.Hex {
		var err error
		raw, err = serializer.HexDecode(o.Input)
		if err != nil {
			return err
		}
	}

	d.out.Success("Base58 encoded: %s", serializer.Base58Encode(raw))
	d.log.Info(fmt.Sprintf("encoded %d bytes to base58", len(raw)))
	return nil
}

func (d Dispatcher) decode(o Decode) error {
	raw, err := serializer.Base58Decode(o.Input)
	if err != nil {
		return err
	}

	switch {
	case o.Hex:
		d.out.Success("Decoded (hex): %s", serializer.HexEncode(raw))
	case utf8.Valid(raw):
		d.out.Value("Decoded (string):", string(raw))
	default:
		d.out.Success("Decoded (bytes): %v", raw)
		d.out.Success("Decoded (hex): %s", serializer.HexEncode(raw))
	}
	d.log.Info(fmt.Sprintf("decoded %d bytes from base58", len(raw)))
	return nil
}

func (d Dispatcher) walletToBase58(o WalletToBase58) error {
	w, err := d.files.ReadWallet(o.File)
	if err != nil {
		return err
	}

	d.out.Success("Base58 private key: %s", serializer.Base58Encode(w))
	d.out.Info("Wallet byte array length: %d bytes", len(w))
	d.log.Info(fmt.Sprintf("wallet %q encoded to base58", o.File))
	return nil
}

func (d Dispatcher) base58ToWallet(o Base58ToWallet) error {
	w, err := serializer.Base58Decode(o.Input)
	if err != nil {
		return err
	}

	if o.Output != "" {
		if err := d.files.SaveWallet(o.Output, w); err != nil {
			// Decoding succeeded, so the length is reported next to the write failure.
			d.out.Info("Decoded byte array length: %d bytes", len(w))
			return err
		}
		d.out.Success("Wallet saved to: %s", o.Output)
		d.log.Info(fmt.Sprintf("wallet saved to %q", o.Output))
	} else {
		text, err := d.files.EncodeWallet(w)
		if err != nil {
			return err
		}
		d.out.Success("Wallet format (u8 array):")
		d.out.Block(text)
	}

	d.out.Info("Decoded byte array length: %d bytes", len(w))
	return nil
}
