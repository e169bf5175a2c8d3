package models

// Regions - реестр административных регионов. Порядок фиксирован и используется
// для выпадающих списков, поэтому менять его нельзя.
var Regions = []string{
	"Tanger-Tétouan-Al Hoceïma",
	"L'Oriental",
	"Fès-Meknès",
	"Rabat-Salé-Kénitra",
	"Béni Mellal-Khénifra",
	"Casablanca-Settat",
	"Marrakech-Safi",
	"Drâa-Tafilalet",
	"Souss-Massa",
	"Guelmim-Oued Noun",
	"Laâyoune-Sakia El Hamra",
	"Dakhla-Oued Ed-Dahab",
}

// DefaultRegion используется для регионального администратора без указанного региона
const DefaultRegion = "Casablanca-Settat"

var regionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Regions))
	for _, r := range Regions {
		set[r] = struct{}{}
	}
	return set
}()

// IsValidRegion проверяет, что регион есть в реестре (точное совпадение)
func IsValidRegion(region string) bool {
	_, ok := regionSet[region]
	return ok
}

// ListRegions возвращает копию реестра
func ListRegions() []string {
	out := make([]string, len(Regions))
	copy(out, Regions)
	return out
}
