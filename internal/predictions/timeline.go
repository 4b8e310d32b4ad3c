package predictions

import (
	"rehoboam/internal/models"
)

// neutralPrior is the probability assigned to every domain in a month until a
// prediction for that (month, domain) overwrites it.
const neutralPrior = 0.5

// GenerateTimelineData builds the dense month-by-month sequence spanning the
// inclusive [startYear, endYear] range. The result always contains exactly
// (endYear-startYear+1)*12 entries in ascending (year, month) order; a
// reversed range yields an empty slice rather than an error.
//
// When two catalog predictions in the same month share a domain, the later
// one in catalog order wins the probability slot. That last-write-wins
// behavior is deliberate and load-bearing for catalog authors.
func GenerateTimelineData(startYear, endYear int) []models.MonthData {
	return generateTimeline(catalog, startYear, endYear)
}

func generateTimeline(list []models.Prediction, startYear, endYear int) []models.MonthData {
	if startYear > endYear {
		return []models.MonthData{}
	}

	data := make([]models.MonthData, 0, (endYear-startYear+1)*12)
	for year := startYear; year <= endYear; year++ {
		for month := 0; month < 12; month++ {
			probabilities := make(map[models.Domain]float64, models.DomainCount)
			for _, d := range models.AllDomains() {
				probabilities[d] = neutralPrior
			}

			var monthPredictions []models.Prediction
			for _, p := range list {
				if p.Year == year && p.Month == month {
					monthPredictions = append(monthPredictions, p)
					probabilities[p.Domain] = p.Probability
				}
			}

			data = append(data, models.MonthData{
				Year:          year,
				Month:         month,
				Probabilities: probabilities,
				Predictions:   monthPredictions,
			})
		}
	}
	return data
}

// AverageProbability returns the unweighted mean probability over the
// requested domain subset, or over the full domain set when the subset is
// empty. The unfiltered case divides by the fixed domain count of 6, not the
// map size, matching the catalog's fixed six-domain contract.
func AverageProbability(probabilities map[models.Domain]float64, activeDomains []models.Domain) float64 {
	if len(activeDomains) == 0 {
		var sum float64
		for _, v := range probabilities {
			sum += v
		}
		return sum / models.DomainCount
	}

	var sum float64
	for _, d := range activeDomains {
		sum += probabilities[d]
	}
	return sum / float64(len(activeDomains))
}
