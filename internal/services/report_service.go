// internal/services/report_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

type ReportService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalOrders    int64          `json:"totalOrders"`
	TotalProducts  int64          `json:"totalProducts"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalCustomers int64          `json:"totalCustomers"`
	RecentOrders   []RecentOrder  `json:"recentOrders"`
	SalesData      []MonthlySales `json:"salesData"`
	TopProducts    []TopProduct   `json:"topProducts"`
}

type RecentOrder struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Total        float64            `json:"total"`
	Status       models.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type MonthlySales struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type TopProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"totalSold"`
}

type OrderStats struct {
	TotalOrders  int64                        `json:"totalOrders"`
	TotalRevenue float64                      `json:"totalRevenue"`
	ByStatus     map[models.OrderStatus]int64 `json:"byStatus"`
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.TotalRevenue)

	// Distinct shipping names stand in for customers, as the original
	// dashboard did.
	s.db.Model(&models.Order{}).
		Select("COUNT(DISTINCT shipping_name)").Scan(&stats.TotalCustomers)

	// Recent orders
	var recent []models.Order
	if err := s.db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	for _, order := range recent {
		stats.RecentOrders = append(stats.RecentOrders, RecentOrder{
			ID:           order.ID.String(),
			CustomerName: order.ShippingAddress.Name,
			Total:        order.Total,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
		})
	}

	// Monthly sales for the last six months
	sixMonthsAgo := time.Now().AddDate(0, -5, 0)
	monthStart := time.Date(sixMonthsAgo.Year(), sixMonthsAgo.Month(), 1, 0, 0, 0, 0, sixMonthsAgo.Location())

	rows := []struct {
		Month string
		Total float64
	}{}
	if err := s.db.Model(&models.Order{}).
		Select("TO_CHAR(created_at, 'YYYY-MM') AS month, SUM(total) AS total").
		Where("created_at >= ?", monthStart).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly sales: %w", err)
	}
	for _, row := range rows {
		stats.SalesData = append(stats.SalesData, MonthlySales(row))
	}

	// Top five products by quantity sold
	topRows := []struct {
		ProductID string
		Name      string
		TotalSold int64
	}{}
	if err := s.db.Model(&models.OrderItem{}).
		Select("product_id, MIN(name) AS name, SUM(quantity) AS total_sold").
		Group("product_id").
		Order("total_sold DESC").
		Limit(5).
		Scan(&topRows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}
	for _, row := range topRows {
		stats.TopProducts = append(stats.TopProducts, TopProduct(row))
	}

	return stats, nil
}

func (s *ReportService) GetOrderStats() (*OrderStats, error) {
	stats := &OrderStats{ByStatus: make(map[models.OrderStatus]int64)}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.TotalRevenue)

	rows := []struct {
		Status models.OrderStatus
		Count  int64
	}{}
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate order statuses: %w", err)
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
	}

	return stats, nil
}
