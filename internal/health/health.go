package health

import (
	"context"
	"time"

	"rental-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type HealthChecker struct {
	db    *pgxpool.Pool
	cache *cache.Client
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Cache    CacheHealth    `json:"cache"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type CacheHealth struct {
	Status string `json:"status"`
}

// SystemStats is the host-level view served on the detailed endpoint.
type SystemStats struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemPercent  float64 `json:"mem_percent"`
	MemUsedMB   uint64  `json:"mem_used_mb"`
	MemTotalMB  uint64  `json:"mem_total_mb"`
	DiskPercent float64 `json:"disk_percent"`
}

type DetailedStatus struct {
	HealthStatus
	System SystemStats `json:"system"`
}

func NewHealthChecker(db *pgxpool.Pool, c *cache.Client) *HealthChecker {
	return &HealthChecker{db: db, cache: c}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	// Redis is optional, so it never flips the overall status.
	cacheStatus := "healthy"
	if !h.cache.IsHealthy() {
		cacheStatus = "unavailable"
	}

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
		Cache:    CacheHealth{Status: cacheStatus},
	}
}

// CheckDetailed adds host CPU, memory and disk readings.
func (h *HealthChecker) CheckDetailed() DetailedStatus {
	basic := h.CheckBasic()

	var stats SystemStats
	if cpuPercents, err := cpu.Percent(0, false); err == nil && len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		stats.MemPercent = memStats.UsedPercent
		stats.MemUsedMB = memStats.Used / 1024 / 1024
		stats.MemTotalMB = memStats.Total / 1024 / 1024
	}
	if diskStats, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = diskStats.UsedPercent
	}

	return DetailedStatus{HealthStatus: basic, System: stats}
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
