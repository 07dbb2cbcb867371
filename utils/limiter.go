package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanSendOTP enforces per-recipient send limits: at most once per 60 seconds
// and 10 times per hour.
func CanSendOTP(rdb *redis.Client, key string) (bool, string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("otp_minute_%s", key)
	hourKey := fmt.Sprintf("otp_hour_%s", key)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "OTP can be requested at most once every 60 seconds"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "OTP can be requested at most 10 times per hour"
	}
	return true, ""
}

func MarkOTPSent(rdb *redis.Client, key string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("otp_minute_%s", key)
	hourKey := fmt.Sprintf("otp_hour_%s", key)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
