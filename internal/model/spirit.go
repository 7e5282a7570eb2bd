package model

// SpiritType classifies a bottle. The set mirrors the categories the
// cellar UI offers; values are stable wire strings.
type SpiritType string

const (
	SpiritRum           SpiritType = "rum"
	SpiritWhisky        SpiritType = "whisky"
	SpiritGin           SpiritType = "gin"
	SpiritVodka         SpiritType = "vodka"
	SpiritTequila       SpiritType = "tequila"
	SpiritCognac        SpiritType = "cognac"
	SpiritArmagnac      SpiritType = "armagnac"
	SpiritCalvados      SpiritType = "calvados"
	SpiritEauDeVie      SpiritType = "eau_de_vie"
	SpiritAbsinthe      SpiritType = "absinthe"
	SpiritLiqueur       SpiritType = "liqueur"
	SpiritPastis        SpiritType = "pastis"
	SpiritSchnapps      SpiritType = "schnapps"
	SpiritGrappa        SpiritType = "grappa"
	SpiritChartreuse    SpiritType = "chartreuse"
	SpiritRedWine       SpiritType = "red_wine"
	SpiritWhiteWine     SpiritType = "white_wine"
	SpiritRoseWine      SpiritType = "rose_wine"
	SpiritSparklingWine SpiritType = "sparkling_wine"
	SpiritChampagne     SpiritType = "champagne"
	SpiritProsecco      SpiritType = "prosecco"
	SpiritCava          SpiritType = "cava"
	SpiritBeer          SpiritType = "beer"
	SpiritCider         SpiritType = "cider"
	SpiritMead          SpiritType = "mead"
	SpiritSake          SpiritType = "sake"
	SpiritBitter        SpiritType = "bitter"
	SpiritRatafia       SpiritType = "ratafia"
	SpiritLimoncello    SpiritType = "limoncello"
)

// SpiritTypes lists every known type, in display order.
var SpiritTypes = []SpiritType{
	SpiritRum, SpiritWhisky, SpiritGin, SpiritVodka, SpiritTequila,
	SpiritCognac, SpiritArmagnac, SpiritCalvados, SpiritEauDeVie,
	SpiritAbsinthe, SpiritLiqueur, SpiritPastis, SpiritSchnapps,
	SpiritGrappa, SpiritChartreuse, SpiritRedWine, SpiritWhiteWine,
	SpiritRoseWine, SpiritSparklingWine, SpiritChampagne, SpiritProsecco,
	SpiritCava, SpiritBeer, SpiritCider, SpiritMead, SpiritSake,
	SpiritBitter, SpiritRatafia, SpiritLimoncello,
}

func (t SpiritType) Valid() bool {
	for _, known := range SpiritTypes {
		if t == known {
			return true
		}
	}
	return false
}
