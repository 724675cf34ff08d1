package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// StationDoc vive en la colección stations (Mongo). La provisiona el
// sistema TMES; para nosotros es solo lectura.
type StationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StationName string             `bson:"stationName" json:"stationName"`
	PlantCode   string             `bson:"plantCode" json:"plantCode"`
	// Category es el campo tipado nuevo; los documentos viejos no lo
	// traen y se siguen resolviendo por nombre (ver repository).
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

// MandrelSlot es una posición de mandril en la configuración vigente.
// quantity es el peso del slot (entero ≥ 0) que entra al plan.
type MandrelSlot struct {
	Mandrel        string  `bson:"mandrel" json:"mandrel"`
	Status         string  `bson:"status,omitempty" json:"status,omitempty"`
	Reference      string  `bson:"reference,omitempty" json:"reference,omitempty"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	Trolley        string  `bson:"trolley,omitempty" json:"trolley,omitempty"`
	MandrelStdTime float64 `bson:"mandrelStdTime,omitempty" json:"mandrelStdTime,omitempty"`
}

// CurrentConfigDoc vive en la colección currents: la configuración
// vigente de una estación (ciclos nominales + mandriles montados).
// Ojo: aquí el código de planta es plant_code, no plantCode.
type CurrentConfigDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StationName string             `bson:"stationName" json:"stationName"`
	PlantCode   string             `bson:"plant_code" json:"plant_code"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	// Quantity = ciclos nominales del equipo (ciclos TMES)
	Quantity      int           `bson:"quantity" json:"quantity"`
	MandrelConfig []MandrelSlot `bson:"mandrelConfig" json:"mandrelConfig"`
}
