package database

import (
	"log"
)

// InitAggregateFunctions installs the server-side rollup functions the admin
// dashboard queries run through. All of them are range-scoped on created_at
// and bucket by UTC calendar day where a time axis is needed.
func (s *GORMStore) InitAggregateFunctions() error {
	log.Println("Initializing PostgreSQL aggregate functions.")

	statements := []string{
		// Per-day unique sessions and page views for the range
		`CREATE OR REPLACE FUNCTION get_site_visits_stats(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(visit_date date, unique_visits bigint, total_page_views bigint) AS $$
			SELECT d.day::date AS visit_date,
				COALESCE(v.unique_visits, 0) AS unique_visits,
				COALESCE(p.total_page_views, 0) AS total_page_views
			FROM generate_series(date_trunc('day', start_date), date_trunc('day', end_date), interval '1 day') AS d(day)
			LEFT JOIN (
				SELECT date_trunc('day', created_at) AS day, COUNT(DISTINCT session_id) AS unique_visits
				FROM site_visits
				WHERE created_at >= start_date AND created_at <= end_date
				GROUP BY 1
			) v ON v.day = d.day
			LEFT JOIN (
				SELECT date_trunc('day', created_at) AS day, COUNT(*) AS total_page_views
				FROM page_views
				WHERE created_at >= start_date AND created_at <= end_date
				GROUP BY 1
			) p ON p.day = d.day
			ORDER BY visit_date ASC;
		$$ LANGUAGE sql STABLE;`,

		// Most viewed paths in the range
		`CREATE OR REPLACE FUNCTION get_top_pages(start_date timestamptz, end_date timestamptz, limit_count int)
		RETURNS TABLE(path varchar, page_title varchar, view_count bigint) AS $$
			SELECT pv.path, MAX(pv.page_title) AS page_title, COUNT(*) AS view_count
			FROM page_views pv
			WHERE pv.created_at >= start_date AND pv.created_at <= end_date
			GROUP BY pv.path
			ORDER BY view_count DESC
			LIMIT limit_count;
		$$ LANGUAGE sql STABLE;`,

		// Interest signal counts per category, resolved to the category name
		`CREATE OR REPLACE FUNCTION get_category_interest_stats(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(category_id uuid, category_name varchar, interest_count bigint) AS $$
			SELECT ci.category_id::uuid, COALESCE(c.name_en, 'unknown') AS category_name, COUNT(*) AS interest_count
			FROM category_interest ci
			LEFT JOIN categories c ON c.id::text = ci.category_id::text
			WHERE ci.created_at >= start_date AND ci.created_at <= end_date
			GROUP BY ci.category_id, c.name_en
			ORDER BY interest_count DESC;
		$$ LANGUAGE sql STABLE;`,

		// Interest signal counts per content type
		`CREATE OR REPLACE FUNCTION get_content_type_stats(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(content_type varchar, interest_count bigint) AS $$
			SELECT cti.content_type, COUNT(*) AS interest_count
			FROM content_type_interest cti
			WHERE cti.created_at >= start_date AND cti.created_at <= end_date
			GROUP BY cti.content_type
			ORDER BY interest_count DESC;
		$$ LANGUAGE sql STABLE;`,

		// Language preference counts
		`CREATE OR REPLACE FUNCTION get_language_stats(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(language varchar, preference_count bigint) AS $$
			SELECT lp.language, COUNT(*) AS preference_count
			FROM language_preference lp
			WHERE lp.created_at >= start_date AND lp.created_at <= end_date
			GROUP BY lp.language
			ORDER BY preference_count DESC;
		$$ LANGUAGE sql STABLE;`,
	}

	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	log.Println("Aggregate functions installed.")
	return nil
}
