package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tciv_backend/internals/features/produccion/stations/model"
)

var ErrStationNotFound = errors.New("station not found")

// StationRepository lee el store de configuración (Mongo).
type StationRepository struct {
	DB *mongo.Database
}

func NewStationRepository(db *mongo.Database) *StationRepository {
	return &StationRepository{DB: db}
}

// categoryFilter arma el filtro por categoría. Documentos nuevos traen
// el campo tipado category; los legados se resuelven por substring del
// nombre (case-insensitive), igual que siempre lo hizo el dashboard.
func categoryFilter(category string) bson.M {
	category = strings.TrimSpace(category)
	if category == "" {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"category": strings.ToLower(category)},
		// el valor viene del query string: escapado para que un
		// metacaracter no cambie el match
		bson.M{"stationName": primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"}},
	}}
}

// ListStations regresa las estaciones de la planta que caen en la
// categoría, ordenadas por nombre ascendente.
func (r *StationRepository) ListStations(ctx context.Context, plantCode, category string) ([]model.StationDoc, error) {
	filter := categoryFilter(category)
	filter["plantCode"] = plantCode

	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "stationName": 1, "plantCode": 1}).
		SetSort(bson.D{{Key: "stationName", Value: 1}})

	cur, err := r.DB.Collection("stations").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stations := []model.StationDoc{}
	if err := cur.All(ctx, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *StationRepository) GetStationByID(ctx context.Context, id string) (*model.StationDoc, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrStationNotFound
	}

	var station model.StationDoc
	err = r.DB.Collection("stations").
		FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(bson.M{"_id": 1, "stationName": 1, "plantCode": 1})).
		Decode(&station)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

// GetCurrentByStation regresa la configuración vigente de una estación.
func (r *StationRepository) GetCurrentByStation(ctx context.Context, stationName string) (*model.CurrentConfigDoc, error) {
	var current model.CurrentConfigDoc
	err := r.DB.Collection("currents").
		FindOne(ctx, bson.M{"stationName": stationName}).
		Decode(&current)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &current, nil
}

// ListCurrentConfigs regresa las configuraciones vigentes de la planta
// para una categoría (insumo del agregador de cumplimiento).
func (r *StationRepository) ListCurrentConfigs(ctx context.Context, plantCode, category string) ([]model.CurrentConfigDoc, error) {
	filter := categoryFilter(category)
	filter["plant_code"] = plantCode

	opts := options.Find().
		SetProjection(bson.M{"stationName": 1, "quantity": 1, "mandrelConfig": 1})

	cur, err := r.DB.Collection("currents").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	configs := []model.CurrentConfigDoc{}
	if err := cur.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
