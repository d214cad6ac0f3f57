package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
)

// RandDigits 生成 n 位数字验证码
func RandDigits(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		x, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		out[i] = byte('0' + x.Int64())
	}
	return string(out), nil
}
