package commands

import (
	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/govalues/decimal"
)

// Configuration keys read per operation through the ConfigProvider.
// Handlers never cache the values; operators may change them at runtime.
const (
	ConfigDispatchRadiusKm      = "DISPATCH_RADIUS_KM"
	ConfigReassignRadiusKm      = "REASSIGN_RADIUS_KM"
	ConfigCurrency              = "CURRENCY"
	ConfigDeliveryBaseFee       = "DELIVERY_BASE_FEE"
	ConfigDeliveryFeePerKm      = "DELIVERY_FEE_PER_KM"
	ConfigPlatformRate          = "COMMISSION_PLATFORM_RATE"
	ConfigPharmacyRate          = "COMMISSION_PHARMACY_RATE"
	ConfigCourierRate           = "COMMISSION_COURIER_RATE"
	ConfigWaitingTimeoutMin     = "WAITING_TIMEOUT_MINUTES"
	ConfigWaitingFeePerMinute   = "WAITING_FEE_PER_MINUTE"
	ConfigWaitingFreeMinutes    = "WAITING_FREE_MINUTES"
	ConfigWaitingFeeBeneficiary = "WAITING_FEE_BENEFICIARY"
	ConfigMinWalletBalance      = "MIN_WALLET_BALANCE"
)

// Defaults applied when a key is unset.
const (
	DefaultDispatchRadiusKm    = 20.0
	DefaultReassignRadiusKm    = 15.0
	DefaultCurrency            = "XOF"
	DefaultDeliveryBaseFee     = 500  // minor units
	DefaultDeliveryFeePerKm    = 100  // minor units per km
	DefaultWaitingTimeoutMin   = 10
	DefaultWaitingFeePerMinute = 100 // minor units
	DefaultWaitingFreeMinutes  = 2
	DefaultMinWalletBalance    = 0 // minor units

	// BeneficiaryCourier routes accrued waiting fees to the courier out
	// of the platform wallet; BeneficiaryNone absorbs them.
	BeneficiaryCourier = "courier"
	BeneficiaryNone    = "none"
)

// Default commission split applied when no per-pharmacy override and no
// configuration is present.
var (
	defaultPlatformRate = decimal.MustParse("0.10")
	defaultPharmacyRate = decimal.MustParse("0.80")
	defaultCourierRate  = decimal.MustParse("0.10")
)

// currency reads the ledger currency.
func currency(cfg ports.ConfigProvider) string {
	return cfg.GetString(ConfigCurrency, DefaultCurrency)
}

// commissionRates resolves the rate set for an order: the pharmacy's
// override when present, the configured platform-wide rates otherwise.
func commissionRates(cfg ports.ConfigProvider, override *commission.RateSet) (commission.RateSet, error) {
	if override != nil {
		return *override, nil
	}

	return commission.NewRateSet(
		cfg.GetDecimal(ConfigPlatformRate, defaultPlatformRate),
		cfg.GetDecimal(ConfigPharmacyRate, defaultPharmacyRate),
		cfg.GetDecimal(ConfigCourierRate, defaultCourierRate),
	)
}

// waitingFeePolicy builds the waiting-fee policy from fresh configuration.
func waitingFeePolicy(cfg ports.ConfigProvider) (services.WaitingFeePolicy, error) {
	feePerMinute, err := kernel.NewMoneyFromMinorUnits(
		int64(cfg.GetInt(ConfigWaitingFeePerMinute, DefaultWaitingFeePerMinute)),
		currency(cfg),
	)
	if err != nil {
		return services.WaitingFeePolicy{}, err
	}

	return services.NewWaitingFeePolicy(
		cfg.GetInt(ConfigWaitingTimeoutMin, DefaultWaitingTimeoutMin),
		cfg.GetInt(ConfigWaitingFreeMinutes, DefaultWaitingFreeMinutes),
		feePerMinute,
	)
}

// deliveryFee prices a trip: a base fee plus a per-kilometer charge, both
// in minor units from configuration.
func deliveryFee(cfg ports.ConfigProvider, distanceKm float64) (kernel.Money, error) {
	base, err := kernel.NewMoneyFromMinorUnits(
		int64(cfg.GetInt(ConfigDeliveryBaseFee, DefaultDeliveryBaseFee)), currency(cfg))
	if err != nil {
		return kernel.Money{}, err
	}

	perKm, err := kernel.NewMoneyFromMinorUnits(
		int64(cfg.GetInt(ConfigDeliveryFeePerKm, DefaultDeliveryFeePerKm)), currency(cfg))
	if err != nil {
		return kernel.Money{}, err
	}

	km, err := decimal.NewFromFloat64(distanceKm)
	if err != nil {
		return kernel.Money{}, err
	}

	variable, err := perKm.MulRate(km)
	if err != nil {
		return kernel.Money{}, err
	}

	return base.Add(variable)
}
