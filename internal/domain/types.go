package domain

import "time"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Segment string

const (
	SegmentEquity  Segment = "EQ"
	SegmentFutures Segment = "FUT"
	SegmentOptions Segment = "OPT"
)

type OrderType string

const (
	OrderTypeMarket OrderType = "Market Order"
	OrderTypeLimit  OrderType = "Limit Order"
)

type ProductType string

const (
	ProductTypeNormal   ProductType = "NRML"
	ProductTypeIntraday ProductType = "MIS"
)

type OptionClass string

const (
	OptionClassNone OptionClass = ""
	OptionClassCall OptionClass = "CE"
	OptionClassPut  OptionClass = "PE"
)

type PointsBasis string

const (
	PointsBasisPoint   PointsBasis = "Point"
	PointsBasisPercent PointsBasis = "Percentage"
)

// StrategyIntent is the caller-facing, partially specified strategy
// description. The zero value of a field means "unset"; ResolveIntent fills
// every unset field from the default table. Alias fields (quantity, side,
// max_steps, averaging_points, target_points) override their canonical
// counterparts when set and never combine with them.
//
// is_intraday defaults to false for every tool variant. The reference
// behavior disagreed with itself here; false is the documented choice.
type StrategyIntent struct {
	StrategyName string `json:"strategy_name,omitempty"`
	Symbol       string `json:"symbol"`
	Exchange     string `json:"exchange,omitempty"`
	Segment      string `json:"segment,omitempty"`
	Contract     string `json:"contract,omitempty"`
	Expiry       string `json:"expiry,omitempty"`

	Qty                int    `json:"qty,omitempty"`
	Quantity           int    `json:"quantity,omitempty"` // alias of qty
	QtyType            string `json:"qty_type,omitempty"`
	Lot                int    `json:"lot,omitempty"`
	AverageValue       int    `json:"average_value,omitempty"`
	AveragingPoints    int    `json:"averaging_points,omitempty"` // alias of average_value
	AverageBy          string `json:"average_by,omitempty"`
	IntradayTarget     int    `json:"intraday_target,omitempty"`
	TargetPoints       int    `json:"target_points,omitempty"` // alias of intraday_target
	TargetBy           string `json:"target_by,omitempty"`
	Target             int    `json:"target,omitempty"`
	MaximumSteps       int    `json:"maximum_steps,omitempty"`
	MaxSteps           int    `json:"max_steps,omitempty"` // alias of maximum_steps
	MaximumTargetSteps int    `json:"maximum_target_steps,omitempty"`

	JobbingSide       string `json:"jobbing_side,omitempty"`
	Side              string `json:"side,omitempty"` // alias of jobbing_side
	JobbingStartPrice int    `json:"jobbing_start_price,omitempty"`
	JobbingEndPrice   int    `json:"jobbing_end_price,omitempty"`

	IsIntraday        bool   `json:"is_intraday,omitempty"`
	IntradayEntryTime string `json:"intraday_entry_time,omitempty"`
	IntradayExitTime  string `json:"intraday_exit_time,omitempty"`

	OrderType             string `json:"order_type,omitempty"`
	ProductType           string `json:"product_type,omitempty"`
	ExitOrderProductType  string `json:"exit_order_product_type,omitempty"`
	NoOfLimitOrderRetry   int    `json:"no_of_limit_order_retry,omitempty"`
	RetryAtEverySeconds   int    `json:"retry_at_every_seconds,omitempty"`
	MarketOrderAfterRetry bool   `json:"market_order_after_retry,omitempty"`

	SqOffOnMaximumSteps      bool  `json:"sqroff_on_maximum_steps,omitempty"`
	CalculateQtyOnMarketJump bool  `json:"calculate_qty_on_market_jump,omitempty"`
	AllowUpdateParameters    *bool `json:"allow_update_parameters,omitempty"`

	ResetCycleByMasterTPSL  bool `json:"reset_cycle_by_master_tpsl,omitempty"`
	ResetCycleOnPositiveMTM int  `json:"reset_cycle_on_positive_mtm,omitempty"`
	MasterTPMoney           int  `json:"master_tp_money,omitempty"`
	MasterSLMoney           int  `json:"master_sl_money,omitempty"`

	RolloverBeforeDays int    `json:"rollover_before_days,omitempty"`
	IsAutoRollover     bool   `json:"is_auto_rollover,omitempty"`
	RolloverTime       string `json:"rollover_time,omitempty"`

	IsTrailSL   bool `json:"is_trail_sl,omitempty"`
	ProfitMove  int  `json:"profit_move,omitempty"`
	SLMove      int  `json:"sl_move,omitempty"`
	NoOfTrailSL int  `json:"no_of_trail_sl,omitempty"`

	ScalpingOpeningQty int    `json:"scalping_opening_qty,omitempty"`
	IncreaseQtyOnAvg   bool   `json:"increase_qty_on_avg,omitempty"`
	IncreaseQty        int    `json:"increase_qty,omitempty"`
	IncreaseQtyType    string `json:"increase_qty_type,omitempty"`

	ATM         int    `json:"atm,omitempty"`
	StrikePrice int    `json:"strike_price,omitempty"`
	OptionType  string `json:"option_type,omitempty"`

	RequiredMargin         int  `json:"required_margin,omitempty"`
	IsAddHedgeLeg          bool `json:"is_add_hedge_leg,omitempty"`
	Rebacktest             bool `json:"rebacktest,omitempty"`
	EffectAllSubStrategies bool `json:"effect_all_sub_strategies,omitempty"`
}

// CanonicalStrategyRecord is the exact wire contract of the MarketMaya
// create-scalping endpoint. The field set is total: every field is always
// serialized, even when empty or zero. ID stays empty on creation; the
// platform assigns identifiers.
type CanonicalStrategyRecord struct {
	ID               string `json:"id"`
	StrategyName     string `json:"strategy_name"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	StrategyID       string `json:"strategy_id"`
	MixName          string `json:"mix_name"`

	MainExchange string `json:"main_exchange"`
	MainSegment  string `json:"main_segment"`
	MainSymbol   string `json:"main_symbol"`
	MainContract string `json:"main_contract"`
	MainExpiry   string `json:"main_expiry"`

	ProductType          string `json:"product_type"`
	ExitOrderProductType string `json:"exit_order_product_type"`
	QtyType              string `json:"qty_type"`
	Qty                  int    `json:"qty"`
	Lot                  int    `json:"lot"`

	ATM         int    `json:"atm"`
	StrikePrice int    `json:"strike_price"`
	OptionType  string `json:"option_type"`

	IntradayEntryTime string `json:"intraday_entry_time"`
	IntradayExitTime  string `json:"intraday_exit_time"`
	IsIntraday        bool   `json:"is_intraday"`

	JobbingSide       string `json:"jobbing_side"`
	JobbingStartPrice int    `json:"jobbing_start_price"`
	JobbingEndPrice   int    `json:"jobbing_end_price"`

	AverageBy          string `json:"average_by"`
	AverageValue       int    `json:"average_value"`
	TargetBy           string `json:"target_by"`
	Target             int    `json:"target"`
	IntradayTarget     int    `json:"intraday_target"`
	MaximumSteps       int    `json:"maximum_steps"`
	MaximumTargetSteps int    `json:"maximum_target_steps"`

	SqOffOnMaximumSteps      bool `json:"sqroff_on_maximum_steps"`
	CalculateQtyOnMarketJump bool `json:"calculate_qty_on_market_jump"`
	AllowUpdateParameters    bool `json:"allow_update_parameters"`

	OrderType             string `json:"order_type"`
	NoOfLimitOrderRetry   int    `json:"no_of_limit_order_retry"`
	RetryAtEverySeconds   int    `json:"retry_at_every_seconds"`
	MarketOrderAfterRetry bool   `json:"market_order_after_retry"`

	ResetCycleByMasterTPSL bool `json:"reset_cycle_by_master_tpsl"`

	RolloverBeforeDays int    `json:"rollover_before_days"`
	IsAutoRollover     bool   `json:"is_auto_rollover"`
	IsAddHedgeLeg      bool   `json:"is_add_hedge_leg"`
	RolloverTime       string `json:"rollover_time"`

	MasterTPMoney           int `json:"master_tp_money"`
	MasterSLMoney           int `json:"master_sl_money"`
	ResetCycleOnPositiveMTM int `json:"reset_cycle_on_positive_mtm"`
	RequiredMargin          int `json:"required_margin"`

	IsTrailSL   bool `json:"is_trail_sl"`
	ProfitMove  int  `json:"profit_move"`
	SLMove      int  `json:"sl_move"`
	NoOfTrailSL int  `json:"no_of_trail_sl"`

	ScalpingOpeningQty int    `json:"scalping_opening_qty"`
	IncreaseQtyOnAvg   bool   `json:"increase_qty_on_avg"`
	IncreaseQty        int    `json:"increase_qty"`
	IncreaseQtyType    string `json:"increase_qty_type"`

	Rebacktest             bool     `json:"rebacktest"`
	Sub                    []string `json:"sub"`
	EffectAllSubStrategies bool     `json:"effect_all_sub_strategies"`
}

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeRemoteError    OutcomeKind = "remote_error"
	OutcomeTransportError OutcomeKind = "transport_error"
)

// SubmissionOutcome is the single result shape every remote response
// collapses into. Exactly one variant applies; callers switch on Kind and
// never inspect transport shapes.
type SubmissionOutcome struct {
	Kind       OutcomeKind
	Identifier string                 // set for OutcomeSuccess, may be empty
	Detail     map[string]interface{} // decoded success body when one was available
	Message    string                 // set for both error kinds
	StatusCode int                    // set for OutcomeRemoteError when HTTP reported it, else 0
}

// StrategyQueryFilter carries pagination and filter parameters for the
// strategy list endpoint. Symbols is always compiled to a list; an unset
// filter becomes an empty list, never null.
type StrategyQueryFilter struct {
	Skip        int      `json:"skip"`
	Take        int      `json:"take,omitempty"`
	Search      string   `json:"search,omitempty"`
	Symbols     []string `json:"symbols,omitempty"`
	TradingType string   `json:"trading_type,omitempty"`
	SortKey     string   `json:"sort_key,omitempty"`
}

// StrategyQueryRecord is the wire form of a StrategyQueryFilter.
type StrategyQueryRecord struct {
	Skip        int      `json:"skip"`
	Take        int      `json:"take"`
	Search      string   `json:"search"`
	Symbols     []string `json:"symbols"`
	TradingType string   `json:"tradingType"`
	SortBy      string   `json:"sortBy"`
}

// StrategySummary is the reduced projection of one remote strategy record.
type StrategySummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	TradingType     string `json:"trading_type"`
	IsDeployed      bool   `json:"is_deployed"`
	CreatedAt       string `json:"created_at"`
	FormattedMargin string `json:"formatted_margin"`
}

type EventType string

const (
	EventToolInvoked       EventType = "ToolInvoked"
	EventStrategySubmitted EventType = "StrategySubmitted"
	EventStrategyRejected  EventType = "StrategyRejected"
)

// Event is one entry of the tool-invocation audit trail.
type Event struct {
	ID        string                 `json:"event_id"`
	Tool      string                 `json:"tool"`
	Type      EventType              `json:"event_type"`
	Outcome   string                 `json:"outcome"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}
