package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection("packages")}
}

func (r *PackageRepository) ByCode(ctx context.Context, code domainpackages.Code) (*domainpackages.Package, error) {
	var doc packageDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(code)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domainpackages.ErrPackageNotFound, code)
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *PackageRepository) Save(ctx context.Context, pkg *domainpackages.Package) error {
	doc := newPackageDocument(pkg)
	filter := bson.M{"_id": doc.Code, "version": pkg.Version}
	doc.Version = pkg.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	pkg.Version = doc.Version
	return nil
}

func (r *PackageRepository) List(ctx context.Context, params domainpackages.ListParams) ([]*domainpackages.Package, error) {
	filter := bson.M{}
	if params.OnlyActive {
		filter["active"] = true
	}
	if params.Category != "" {
		filter["category"] = string(params.Category)
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))
	}
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainpackages.Package
	for cursor.Next(ctx) {
		var doc packageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

type packageDocument struct {
	Code           string  `bson:"_id"`
	Category       string  `bson:"category"`
	Name           string  `bson:"name"`
	Description    string  `bson:"description"`
	Location       string  `bson:"location"`
	PricePerNight  *int64  `bson:"price_per_night,omitempty"`
	PricePerPerson *int64  `bson:"price_per_person,omitempty"`
	Currency       string  `bson:"currency"`
	MaxGuests      int     `bson:"max_guests"`
	MinNights      int     `bson:"min_nights"`
	MaxNights      int     `bson:"max_nights"`
	IncludesMeals  bool    `bson:"includes_meals"`
	IncludesGuide  bool    `bson:"includes_guide"`
	ImageURL       string  `bson:"image_url"`
	ThumbnailURL   string  `bson:"thumbnail_url"`
	Active         bool    `bson:"active"`
	CreatedAt      int64   `bson:"created_at"`
	UpdatedAt      int64   `bson:"updated_at"`
	Version        int64   `bson:"version"`
}

func newPackageDocument(p *domainpackages.Package) packageDocument {
	doc := packageDocument{
		Code:          string(p.Code),
		Category:      string(p.Category),
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		Currency:      money.DefaultCurrency,
		MaxGuests:     p.MaxGuests,
		MinNights:     p.MinNights,
		MaxNights:     p.MaxNights,
		IncludesMeals: p.IncludesMeals,
		IncludesGuide: p.IncludesGuide,
		ImageURL:      p.ImageURL,
		ThumbnailURL:  p.ThumbnailURL,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt.UnixMilli(),
		UpdatedAt:     p.UpdatedAt.UnixMilli(),
		Version:       p.Version,
	}
	if p.PricePerNight != nil {
		doc.Currency = p.PricePerNight.Currency
		amount := p.PricePerNight.Amount
		doc.PricePerNight = &amount
	}
	if p.PricePerPerson != nil {
		doc.Currency = p.PricePerPerson.Currency
		amount := p.PricePerPerson.Amount
		doc.PricePerPerson = &amount
	}
	return doc
}

func (d packageDocument) toEntity() *domainpackages.Package {
	currency := d.Currency
	if currency == "" {
		currency = money.DefaultCurrency
	}
	pkg := &domainpackages.Package{
		Code:          domainpackages.Code(d.Code),
		Category:      domainpackages.Category(d.Category),
		Name:          d.Name,
		Description:   d.Description,
		Location:      d.Location,
		MaxGuests:     d.MaxGuests,
		MinNights:     d.MinNights,
		MaxNights:     d.MaxNights,
		IncludesMeals: d.IncludesMeals,
		IncludesGuide: d.IncludesGuide,
		ImageURL:      d.ImageURL,
		ThumbnailURL:  d.ThumbnailURL,
		Active:        d.Active,
		CreatedAt:     timestampToTime(d.CreatedAt),
		UpdatedAt:     timestampToTime(d.UpdatedAt),
		Version:       d.Version,
	}
	if d.PricePerNight != nil {
		m := money.Money{Amount: *d.PricePerNight, Currency: currency}
		pkg.PricePerNight = &m
	}
	if d.PricePerPerson != nil {
		m := money.Money{Amount: *d.PricePerPerson, Currency: currency}
		pkg.PricePerPerson = &m
	}
	return pkg
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
