package utils

import (
	"fmt"
	"math/rand"
)

// GetRandomNumberInRange 返回 [min, max) 区间内的均匀随机数
//
// min >= max 时直接返回错误（不做夹取），调用方需要自行处理。
// rng 为 nil 时使用全局随机源。
func GetRandomNumberInRange(rng *rand.Rand, min, max float64) (float64, error) {
	if min >= max {
		return 0, fmt.Errorf("min value should be less than max value (min=%v, max=%v)", min, max)
	}
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	return f*(max-min) + min, nil
}
