package jobs

import (
	"context"
	"log"
	"time"
)

// couponDeactivator is the slice of the coupon repository the job needs
type couponDeactivator interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// directoryInvalidator drops the cached directory snapshot after coupons change
type directoryInvalidator interface {
	Invalidate()
}

// CouponExpiryJob periodically deactivates coupons past their validity window
type CouponExpiryJob struct {
	repo     couponDeactivator
	cache    directoryInvalidator
	interval time.Duration
	stop     chan struct{}
}

func NewCouponExpiryJob(repo couponDeactivator, cache directoryInvalidator, interval time.Duration) *CouponExpiryJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CouponExpiryJob{
		repo:     repo,
		cache:    cache,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *CouponExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting coupon expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Coupon expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Coupon expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredCoupons(ctx)
		}
	}
}

func (j *CouponExpiryJob) Stop() {
	close(j.stop)
}

func (j *CouponExpiryJob) processExpiredCoupons(ctx context.Context) {
	n, err := j.repo.DeactivateExpired(ctx)
	if err != nil {
		log.Printf("❌ Error deactivating expired coupons: %v", err)
		return
	}
	if n == 0 {
		return
	}

	// coupons changed under the directory snapshot
	if j.cache != nil {
		j.cache.Invalidate()
	}
	log.Printf("✅ Deactivated %d expired coupons", n)
}
