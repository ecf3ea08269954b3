package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/daterange"
	"adventurestay/internal/domain/shared/money"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	doc := newBookingDocument(b)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *BookingRepository) ListActiveForPackage(ctx context.Context, code domainpackages.Code) ([]*domainbooking.Booking, error) {
	filter := bson.M{
		"package_code": string(code),
		"status":       bson.M{"$ne": string(domainbooking.StatusCancelled)},
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainbooking.Booking
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

type bookingDocument struct {
	ID          string `bson:"_id"`
	PackageCode string `bson:"package_code"`
	GuestName   string `bson:"guest_name"`
	GuestEmail  string `bson:"guest_email"`
	StartDate   int64  `bson:"start_date"`
	EndDate     int64  `bson:"end_date"`
	Guests      int    `bson:"guests"`
	Nights      int    `bson:"nights"`
	TotalAmount int64  `bson:"total_amount"`
	Currency    string `bson:"currency"`
	Status      string `bson:"status"`
	CreatedAt   int64  `bson:"created_at"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:          string(b.ID),
		PackageCode: string(b.PackageCode),
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		StartDate:   b.Range.Start.UnixMilli(),
		EndDate:     b.Range.End.UnixMilli(),
		Guests:      b.Guests,
		Nights:      b.Nights,
		TotalAmount: b.Total.Amount,
		Currency:    b.Total.Currency,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UnixMilli(),
	}
}

func (d bookingDocument) toEntity() *domainbooking.Booking {
	return &domainbooking.Booking{
		ID:          domainbooking.BookingID(d.ID),
		PackageCode: domainpackages.Code(d.PackageCode),
		GuestName:   d.GuestName,
		GuestEmail:  d.GuestEmail,
		Range: daterange.DateRange{
			Start: timestampToTime(d.StartDate),
			End:   timestampToTime(d.EndDate),
		},
		Guests:    d.Guests,
		Nights:    d.Nights,
		Total:     money.Money{Amount: d.TotalAmount, Currency: d.Currency},
		Status:    domainbooking.Status(d.Status),
		CreatedAt: timestampToTime(d.CreatedAt),
	}
}

var _ domainbooking.Repository = (*BookingRepository)(nil)
var _ domainpackages.Repository = (*PackageRepository)(nil)
