package dashboard

import (
	"context"
	"net/http"
	"time"

	"srinufoods/apperr"
	"srinufoods/models"
	"srinufoods/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregator is the read-only admin rollup over the orders collection.
// Stats are recomputed on every call; nothing is cached.
type Aggregator struct {
	Orders *mongo.Collection
}

func NewAggregator(orders *mongo.Collection) *Aggregator {
	return &Aggregator{Orders: orders}
}

// TodayRange returns [midnight(now), midnight(now)+24h).
func TodayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// Stats computes the dashboard numbers as of now.
func (a *Aggregator) Stats(ctx context.Context, now time.Time) (*models.DashboardStats, error) {
	todayStart, todayEnd := TodayRange(now)
	today := bson.M{"$gte": todayStart, "$lt": todayEnd}

	total, err := a.Orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store("order count failed", err)
	}
	todayCount, err := a.Orders.CountDocuments(ctx, bson.M{"created_at": today})
	if err != nil {
		return nil, apperr.Store("order count failed", err)
	}
	pending, err := a.Orders.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return nil, apperr.Store("order count failed", err)
	}
	preparing, err := a.Orders.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{models.StatusConfirmed, models.StatusPreparing}},
	})
	if err != nil {
		return nil, apperr.Store("order count failed", err)
	}

	// Today's revenue, cancelled orders excluded.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": today,
			"status":     bson.M{"$ne": models.StatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}
	cursor, err := a.Orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Store("revenue aggregation failed", err)
	}
	var agg []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &agg); err != nil {
		return nil, apperr.Store("revenue decode failed", err)
	}
	revenue := 0.0
	if len(agg) > 0 {
		revenue = utils.Round2(agg[0].Total)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(5)
	recentCursor, err := a.Orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Store("recent orders query failed", err)
	}
	defer recentCursor.Close(ctx)

	var recent []models.Order
	if err := recentCursor.All(ctx, &recent); err != nil {
		return nil, apperr.Store("recent orders decode failed", err)
	}
	if recent == nil {
		recent = []models.Order{}
	}

	return &models.DashboardStats{
		TotalOrders:     total,
		TodayOrders:     todayCount,
		PendingOrders:   pending,
		PreparingOrders: preparing,
		TodayRevenue:    revenue,
		RecentOrders:    recent,
	}, nil
}

// GetStats is the admin dashboard endpoint.
func (a *Aggregator) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := a.Stats(ctx, time.Now())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", utils.M{"stats": stats})
}
