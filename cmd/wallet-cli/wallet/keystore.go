package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

const keyLength int = 32

// keyFile is the on-disk form of one account: the seed is AES-CTR encrypted
// with a key hashed from the passphrase. AddressCount is plain, it only tracks
// how many receive addresses were derived so far.
type keyFile struct {
	Name         string `json:"name"`
	PubKey       string `json:"pub_key"`
	Cipher       string `json:"cipher"`
	CipherText   string `json:"cipher_text"`
	Iv           string `json:"iv"`
	AddressCount uint32 `json:"address_count"`
	Version      uint8  `json:"version"`
}

func hashPassphraseToFixLength(input []byte) []byte {
	sum := sha256.Sum256(input)
	return sum[:keyLength]
}

func EncryptData(data, passphrase []byte) ([]byte, []byte, error) {
	key := hashPassphraseToFixLength(passphrase)
	block, err := aes.NewCipher(key)
	if err != nil {
		return []byte{}, []byte{}, err
	}
	cipherdata := make([]byte, len(data))
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return []byte{}, []byte{}, err
	}
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(cipherdata, data)
	return cipherdata, iv, nil
}

func DecryptData(cipherdata, passphrase, iv []byte) ([]byte, error) {
	key := hashPassphraseToFixLength(passphrase)
	block, err := aes.NewCipher(key)
	if err != nil {
		return []byte{}, err
	}
	data := make([]byte, len(cipherdata))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(data, cipherdata)
	return data, nil
}

func generateFilename(name string) string {
	return fmt.Sprintf("HALO-KEYJSON-%s.json", name)
}

func newKeyFile(name, pubKey string, seed, passphrase []byte) (*keyFile, error) {
	cipherdata, iv, err := EncryptData(seed, passphrase)
	if err != nil {
		return nil, err
	}
	return &keyFile{
		Name:       name,
		PubKey:     pubKey,
		Cipher:     "AES-256",
		CipherText: base64.StdEncoding.EncodeToString(cipherdata),
		Iv:         base64.StdEncoding.EncodeToString(iv),
		Version:    1,
	}, nil
}

func (k *keyFile) decryptSeed(passphrase []byte) ([]byte, error) {
	iv, err := base64.StdEncoding.DecodeString(k.Iv)
	if err != nil {
		return nil, err
	}
	cipherdata, err := base64.StdEncoding.DecodeString(k.CipherText)
	if err != nil {
		return nil, err
	}
	return DecryptData(cipherdata, passphrase, iv)
}

func (k *keyFile) seal(dirPath string) error {
	keyjson, err := json.Marshal(k)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(dirPath, generateFilename(k.Name)), keyjson, 0600)
}

func loadKeyFile(dirPath, name string) (*keyFile, error) {
	path := filepath.Join(dirPath, generateFilename(name))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrAccountNotFound.Format(name)
	}
	keyjson, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var k keyFile
	if err := json.Unmarshal(keyjson, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func listKeyFiles(dirPath string) ([]*keyFile, error) {
	var files []*keyFile
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return files, nil
	}
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		keyjson, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		var k keyFile
		if err := json.Unmarshal(keyjson, &k); err != nil {
			return err
		}
		files = append(files, &k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
