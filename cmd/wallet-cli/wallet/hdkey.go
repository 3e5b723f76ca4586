package wallet

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/itchyny/base58-go"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

const addressPrefix = "HAL"

// m/44'/805'/0'/0 is the account-level derivation root; receive addresses
// append one final non-hardened index.
var rootDerivationPath = []uint32{0x80000000 + 44, 0x80000000 + 805, 0x80000000, 0}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func seedFromMnemonic(mnemonic string) []byte {
	return bip39.NewSeed(mnemonic, "")
}

func deriveKey(seed []byte, index uint32) (*ecdsa.PrivateKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	path := append(append([]uint32{}, rootDerivationPath...), index)
	for _, n := range path {
		key, err = key.NewChildKey(n)
		if err != nil {
			return nil, err
		}
	}
	return crypto.ToECDSAUnsafe(key.Key), nil
}

// encodeAddress builds a HAL-prefixed base58 string over the compressed public
// key hash plus a 4-byte double-sha checksum.
func encodeAddress(pub *ecdsa.PublicKey) Address {
	data := crypto.CompressPubkey(pub)
	hash := sha256.Sum256(data)
	// leading version byte keeps the payload length stable through the
	// big.Int roundtrip below
	payload := append([]byte{1}, hash[:20]...)
	check := sha256.Sum256(payload)
	check = sha256.Sum256(check[:])
	payload = append(payload, check[0:4]...)

	bi := new(big.Int).SetBytes(payload).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return Address(addressPrefix + string(encoded))
}

func deriveAddress(seed []byte, index uint32) (Address, error) {
	key, err := deriveKey(seed, index)
	if err != nil {
		return "", err
	}
	return encodeAddress(&key.PublicKey), nil
}

// accountPubKey identifies an account by its index-0 key; it doubles as the
// passphrase check when reopening a key file.
func accountPubKey(seed []byte) (string, error) {
	key, err := deriveKey(seed, 0)
	if err != nil {
		return "", err
	}
	return string(encodeAddress(&key.PublicKey)), nil
}

// ValidateAddress checks the prefix, base58 alphabet and checksum of an
// address string.
func ValidateAddress(addr string) error {
	if len(addr) <= len(addressPrefix) || addr[:len(addressPrefix)] != addressPrefix {
		return ErrInvalidAddress.Format(addr)
	}
	decoded, err := base58.BitcoinEncoding.Decode([]byte(addr[len(addressPrefix):]))
	if err != nil {
		return ErrInvalidAddress.Format(addr)
	}
	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return ErrInvalidAddress.Format(addr)
	}
	buf := x.Bytes()
	if len(buf) <= 4 {
		return ErrInvalidAddress.Format(addr)
	}
	check := sha256.Sum256(buf[:len(buf)-4])
	check = sha256.Sum256(check[:])
	for i := 0; i < 4; i++ {
		if check[i] != buf[len(buf)-4+i] {
			return ErrInvalidAddress.Format(addr)
		}
	}
	return nil
}
