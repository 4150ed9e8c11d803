package repository

import "time"

// StatisticsCounter feeds the admin dashboard figures from the repositories.
type StatisticsCounter struct {
	Leads  ContactRequestRepository
	Quotes QuoteRepository
}

func (c *StatisticsCounter) CountLeads() (int64, error) {
	return c.Leads.Count("")
}

func (c *StatisticsCounter) CountLeadsSince(since time.Time) (int64, error) {
	return c.Leads.CountSince(since)
}

func (c *StatisticsCounter) CountQuotes() (int64, error) {
	return c.Quotes.Count()
}
