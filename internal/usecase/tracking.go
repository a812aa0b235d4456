package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// 追跡番号を作る約束
type TrackingNumberGenerator interface {
	New() string
}

type trackingNumberGenerator struct{}

func NewTrackingNumberGenerator() TrackingNumberGenerator {
	return &trackingNumberGenerator{}
}

// TRK + ミリ秒タイムスタンプ + 乱数3桁。
// 衝突し得るので、注文作成側はユニーク制約で検知して引き直す。
func (g *trackingNumberGenerator) New() string {
	suffix := uuid.New().ID() % 1000
	return fmt.Sprintf("TRK%d%03d", time.Now().UnixMilli(), suffix)
}
