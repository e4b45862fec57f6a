package pkg

import (
	cryptoRand "crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandHex 生成 n 字节随机数的十六进制串，用作登录挑战 nonce 和锁 token
func RandHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := cryptoRand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ChallengeMessage 钱包需要签名的登录挑战文本
func ChallengeMessage(club, wallet, nonce string) string {
	return fmt.Sprintf("Sign in to %s\nwallet: %s\nnonce: %s", club, wallet, nonce)
}
