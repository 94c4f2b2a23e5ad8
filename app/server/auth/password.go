package auth

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
	"hash"
	"strconv"
	"strings"
)

var ErrUnknownHashFormat = errors.New("unknown password hash format")

var pbkdf2Hashes = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// checkPassword 校验密码；legacy 为 true 表示存储的是旧版本（werkzeug）格式，应当重新以 argon2id 储存
func checkPassword(password, stored string) (match bool, legacy bool, err error) {
	switch {
	case strings.HasPrefix(stored, "$argon2id$"):
		match, _, err = argon2id.CheckHash(password, stored)
		return match, false, err
	case strings.HasPrefix(stored, "pbkdf2:"), strings.HasPrefix(stored, "scrypt:"):
		match, err = checkWerkzeugHash(password, stored)
		return match, true, err
	default:
		return false, false, ErrUnknownHashFormat
	}
}

// checkWerkzeugHash 校验 method$salt$hex 格式的哈希，例如
// pbkdf2:sha256:600000$salt$... 或 scrypt:32768:8:1$salt$...
func checkWerkzeugHash(password, stored string) (bool, error) {
	method, rest, ok := strings.Cut(stored, "$")
	if !ok {
		return false, ErrUnknownHashFormat
	}
	salt, hexHash, ok := strings.Cut(rest, "$")
	if !ok {
		return false, ErrUnknownHashFormat
	}
	want, err := hex.DecodeString(hexHash)
	if err != nil || len(want) == 0 {
		return false, ErrUnknownHashFormat
	}

	args := strings.Split(method, ":")
	var got []byte
	switch args[0] {
	case "pbkdf2":
		hashName, iterations := "sha256", 600000
		if len(args) > 1 {
			hashName = args[1]
		}
		if len(args) > 2 {
			if iterations, err = strconv.Atoi(args[2]); err != nil || iterations <= 0 {
				return false, fmt.Errorf("%w: bad iterations %q", ErrUnknownHashFormat, args[2])
			}
		}
		h, ok := pbkdf2Hashes[hashName]
		if !ok {
			return false, fmt.Errorf("%w: unsupported digest %q", ErrUnknownHashFormat, hashName)
		}
		got = pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), h)
	case "scrypt":
		n, r, p := 32768, 8, 1
		for i, dst := range []*int{&n, &r, &p} {
			if len(args) > i+1 {
				if *dst, err = strconv.Atoi(args[i+1]); err != nil {
					return false, fmt.Errorf("%w: bad scrypt parameter %q", ErrUnknownHashFormat, args[i+1])
				}
			}
		}
		if got, err = scrypt.Key([]byte(password), []byte(salt), n, r, p, len(want)); err != nil {
			return false, fmt.Errorf("scrypt: %w", err)
		}
	default:
		return false, ErrUnknownHashFormat
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
