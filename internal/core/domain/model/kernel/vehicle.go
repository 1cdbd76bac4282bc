package kernel

// VehicleType identifies how a courier travels. It drives the average speed
// used by ETA estimates.
type VehicleType string

const (
	// VehicleMotorcycle is the default courier vehicle.
	VehicleMotorcycle VehicleType = "motorcycle"
	// VehicleCar is a car or van.
	VehicleCar VehicleType = "car"
	// VehicleBicycle is a bicycle.
	VehicleBicycle VehicleType = "bicycle"
	// VehicleWalking is a courier on foot.
	VehicleWalking VehicleType = "walking"
)

// defaultSpeedKmh is used for unrecognized vehicle types.
const defaultSpeedKmh = 25.0

// SpeedKmh returns the assumed average speed for the vehicle in km/h.
// Unknown vehicle types fall back to the car speed.
func (v VehicleType) SpeedKmh() float64 {
	switch v {
	case VehicleMotorcycle:
		return 30
	case VehicleCar:
		return 25
	case VehicleBicycle:
		return 15
	case VehicleWalking:
		return 5
	default:
		return defaultSpeedKmh
	}
}
