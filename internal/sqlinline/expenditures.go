package sqlinline

// QExpendituresByCommittee lists a committee's spending oldest first.
// Args: $1 sboe id (case-insensitive), $2 limit, $3 offset.
const QExpendituresByCommittee = `--sql 8ddcd717-20f0-4491-987c-e1e9d56c8cc7
select
  e.id::text,
  e.source_expenditure_id,
  e.committee_sboe_id,
  e.name,
  e.street_line_1,
  e.street_line_2,
  e.city,
  e.state,
  e.zip_code,
  e.profession,
  e.employer_name,
  e.transaction_type,
  e.date_occurred,
  e.account_code,
  e.amount,
  e.form_of_payment,
  e.purpose,
  e.declaration,
  count(*) over () as full_count
from expenditures e
where upper(e.committee_sboe_id) = upper($1::text)
order by e.date_occurred asc, e.id asc
limit $2::int
offset $3::int;
`
