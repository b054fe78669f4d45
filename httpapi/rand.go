package httpapi

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	mrand "math/rand"

	"golang.org/x/crypto/bcrypt"
)

//APIKeyLength is the length of keys returned by GenerateAPIKey
const APIKeyLength = 64

var chars = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
var max = big.NewInt(int64(len(chars)))

//fallbackRand uses less random math/rand in case of failure
func fallbackRand(err error) int {
	log.Println("Could not use crypto/rand:", err)

	return mrand.Intn(len(chars))
}

//randString returns a random string of given length using crypto/rand
func randString(length int) string {
	str := make([]byte, length)
	for i := range str {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			j := fallbackRand(err)
			str[i] = chars[j]
		} else {
			str[i] = chars[k.Int64()]
		}
	}
	return string(str)
}

//GenerateAPIKey returns a new random API key and its bcrypt hash, suitable for BDUS_APIKEYHASH
func GenerateAPIKey() (key, hash string, err error) {
	key = randString(APIKeyLength)
	h, err := HashAPIKey(key)
	if err != nil {
		return "", "", err
	}
	return key, h, nil
}

//HashAPIKey returns the bcrypt hash of key
func HashAPIKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("Could not hash key: %w", err)
	}
	return string(h), nil
}

//checkAPIKey returns true if key matches hash
func checkAPIKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
