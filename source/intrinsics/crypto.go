package intrinsics

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"github.com/rlisp-lang/rlisp/source/object"
)

const (
	KEY_ITERATIONS = 65536
	KEY_LENGTH     = 32
	SALT_LENGTH    = 32
)

var cryptography = map[string]object.IntrinsicFn{
	"hash-password":  hashPassword,
	"check-password": checkPassword,
	"derive-key":     deriveKey,
	"encrypt":        encrypt,
	"decrypt":        decrypt,
}

func stringArgs(args []object.Expression, n int) ([]string, *object.Error) {
	if err := checkArity(args, n); err != nil {
		return nil, err
	}
	result := make([]string, n)
	for i, arg := range args {
		s, err := toString(arg)
		if err != nil {
			return nil, err
		}
		result[i] = s
	}
	return result, nil
}

func hashPassword(args []object.Expression, env *object.Environment) object.Expression {
	strs, err := stringArgs(args, 1)
	if err != nil {
		return err
	}
	hash, e := bcrypt.GenerateFromPassword([]byte(strs[0]), bcrypt.DefaultCost)
	if e != nil {
		return object.NewCustom(HASH_FAILED, "could not hash password: "+e.Error())
	}
	return str(string(hash))
}

// (check-password password hash)
func checkPassword(args []object.Expression, env *object.Environment) object.Expression {
	strs, err := stringArgs(args, 2)
	if err != nil {
		return err
	}
	return object.MakeBool(bcrypt.CompareHashAndPassword([]byte(strs[1]), []byte(strs[0])) == nil)
}

// (derive-key password salt) gives a hex-encoded key.
func deriveKey(args []object.Expression, env *object.Environment) object.Expression {
	strs, err := stringArgs(args, 2)
	if err != nil {
		return err
	}
	return str(hex.EncodeToString(key(strs[0], []byte(strs[1]))))
}

func key(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, KEY_ITERATIONS, KEY_LENGTH, sha256.New)
}

// (encrypt password plaintext) gives hex-encoded salt, iv and AES-CBC ciphertext, in that order.
func encrypt(args []object.Expression, env *object.Environment) object.Expression {
	strs, err := stringArgs(args, 2)
	if err != nil {
		return err
	}
	salt := make([]byte, SALT_LENGTH)
	if _, e := rand.Read(salt); e != nil {
		return object.NewCustom(HASH_FAILED, "could not make salt: "+e.Error())
	}
	block, e := aes.NewCipher(key(strs[0], salt))
	if e != nil {
		return object.NewCustom(HASH_FAILED, "could not make cipher: "+e.Error())
	}
	plaintext := pad([]byte(strs[1]), aes.BlockSize)
	ciphertext := make([]byte, aes.BlockSize+len(plaintext))
	iv := ciphertext[:aes.BlockSize]
	if _, e := rand.Read(iv); e != nil {
		return object.NewCustom(HASH_FAILED, "could not make iv: "+e.Error())
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext[aes.BlockSize:], plaintext)
	return str(hex.EncodeToString(append(salt, ciphertext...)))
}

// (decrypt password ciphertext) reverses encrypt.
func decrypt(args []object.Expression, env *object.Environment) object.Expression {
	strs, err := stringArgs(args, 2)
	if err != nil {
		return err
	}
	plaintext, e := decryptHex(strs[0], strs[1])
	if e != nil {
		return object.NewCustom(DECRYPTION_FAILED, "could not decrypt: "+e.Error())
	}
	return str(string(plaintext))
}

func decryptHex(password, s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(data) < SALT_LENGTH+2*aes.BlockSize || (len(data)-SALT_LENGTH)%aes.BlockSize != 0 {
		return nil, errors.New("ciphertext has the wrong length")
	}
	salt, iv, ciphertext := data[:SALT_LENGTH], data[SALT_LENGTH:SALT_LENGTH+aes.BlockSize], data[SALT_LENGTH+aes.BlockSize:]
	block, err := aes.NewCipher(key(password, salt))
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return unpad(plaintext, aes.BlockSize)
}

// PKCS #7 padding.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 {
		return nil, errors.New("empty plaintext")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errors.New("wrong password or corrupt ciphertext")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errors.New("wrong password or corrupt ciphertext")
		}
	}
	return b[:len(b)-n], nil
}
