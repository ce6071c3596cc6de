package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ronn-bot/internal/pricing"

	"github.com/disgoorg/disgo/discord"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// CoinEmbed renders a token pair as a price card coloured by the 24h change.
func CoinEmbed(pair pricing.Pair) discord.Embed {
	tone := EmbedLoss
	if pair.Rising() {
		tone = EmbedGain
	}

	title := strings.TrimSpace(pair.Name)
	if title == "" {
		title = pair.Symbol
	}

	return BuildEmbed(EmbedTemplate{
		Tone:  tone,
		Title: title,
		URL:   pair.URL,
		Fields: []discord.EmbedField{
			EmbedField("Price", fmt.Sprintf("$%s : %s%%", pair.PriceUSDOrPlaceholder(), strconv.FormatFloat(pair.PriceChangeH24, 'f', -1, 64)), true),
			EmbedField("Liquidity", "$"+formatAmount(pair.LiquidityUSD), false),
			EmbedField("Chain", pair.ChainID+"@"+pair.DexID, false),
			EmbedField("VOL", "$"+formatAmount(pair.VolumeH24), false),
		},
	})
}

func formatAmount(value float64) string {
	if value == float64(int64(value)) {
		return amountPrinter.Sprintf("%d", int64(value))
	}
	return amountPrinter.Sprintf("%.2f", value)
}

func coinErrorMessage(err error, query string, operator string) string {
	switch {
	case errors.Is(err, pricing.ErrNoPairs):
		return fmt.Sprintf("No pairs found for %s", query)
	case pricing.IsKind(err, pricing.KindStatus):
		return "The price service returned an error, contact " + operator
	case pricing.IsKind(err, pricing.KindDecode):
		return "The price service sent something unexpected, contact " + operator
	case pricing.IsKind(err, pricing.KindUnreachable):
		return "The price service cannot be reached right now."
	default:
		return "Some error occurred, contact " + operator
	}
}
