package components

import (
	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/pkg/clock"
	"payment-intention-service/internal/pkg/config"
	"payment-intention-service/internal/pkg/errs"
	"payment-intention-service/internal/pkg/idgen"
	"payment-intention-service/internal/usecase/commands"
	"payment-intention-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewUUIDGenerator,
	NewPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentIntentionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPaymentIntentionQueries,
	),
)

func NewPolicy(cfg config.Config) (payment.Policy, error) {
	values, err := payment.NewValueWindow(cfg.Payment.MinValue, cfg.Payment.MaxValue)
	if err != nil {
		return payment.Policy{}, errs.Wrap(err, "invalid payment value window")
	}
	rate, err := payment.NewRateWindow(payment.WindowMode(cfg.Payment.LimitWindowMode), cfg.Payment.LimitWindow)
	if err != nil {
		return payment.Policy{}, errs.Wrap(err, "invalid payment rate window")
	}
	policy, err := payment.NewPolicy(values, rate, cfg.Payment.MaxPerWindow)
	if err != nil {
		return payment.Policy{}, errs.Wrap(err, "invalid payment policy")
	}
	return policy, nil
}
