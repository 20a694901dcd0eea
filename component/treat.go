package component

// TreatComponent marks a consumable grid item
type TreatComponent struct {
	// SpawnFrame is the frame the treat appeared on
	SpawnFrame int64
}
