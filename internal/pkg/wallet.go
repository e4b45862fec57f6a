package pkg

import (
	"crypto/ed25519"
	"errors"
	"strings"

	"github.com/mr-tron/base58"
)

var (
	ErrWalletEmpty     = errors.New("wallet address required")
	ErrWalletMalformed = errors.New("invalid wallet address")
	ErrSignatureFormat = errors.New("invalid signature encoding")
	ErrSignatureVerify = errors.New("signature verification failed")
)

// WalletHeader 登录态请求携带钱包地址的请求头
const WalletHeader = "x-wallet-address"

// NormalizeWallet 去掉首尾空白，地址本身大小写敏感不做转换
func NormalizeWallet(addr string) string {
	return strings.TrimSpace(addr)
}

// ValidateWallet 校验 Solana 地址：base58 编码且解码后恰为 32 字节公钥
func ValidateWallet(addr string) error {
	if addr == "" {
		return ErrWalletEmpty
	}
	// base58 地址长度在 32~44 之间，提前拦截超长输入
	if len(addr) < 32 || len(addr) > 44 {
		return ErrWalletMalformed
	}
	raw, err := base58.Decode(addr)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return ErrWalletMalformed
	}
	return nil
}

// VerifyWalletSignature 校验钱包对 message 的 ed25519 签名，签名为 base58 编码
func VerifyWalletSignature(addr, message, signature string) error {
	pub, err := base58.Decode(addr)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return ErrWalletMalformed
	}
	sig, err := base58.Decode(strings.TrimSpace(signature))
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrSignatureFormat
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		return ErrSignatureVerify
	}
	return nil
}
