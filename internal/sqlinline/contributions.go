package sqlinline

// QContributionsByCommittee lists a committee's receipts oldest first.
// Args: $1 sboe id (case-insensitive), $2 limit, $3 offset.
const QContributionsByCommittee = `--sql b029708b-6bc6-43ca-9784-8f5f6f33f8ae
select
  c.id::text,
  c.source_contribution_id,
  c.contributor_id::text,
  c.committee_sboe_id,
  c.transaction_type,
  c.report_name,
  c.date_occurred,
  c.account_code,
  c.amount,
  c.form_of_payment,
  c.purpose,
  c.declaration,
  ct.name,
  ct.profession,
  cm.committee_name,
  cm.candidate_full_name,
  count(*) over () as full_count
from committees cm
join contributions c on cm.sboe_id = c.committee_sboe_id
left join contributors ct on ct.id = c.contributor_id
where upper(cm.sboe_id) = upper($1::text)
order by c.date_occurred asc, c.id asc
limit $2::int
offset $3::int;
`

// QContributionsByContributor lists a contributor's gifts oldest first with
// the contributor's total to each recipient.
// Args: $1 contributor id, $2 limit, $3 offset.
const QContributionsByContributor = `--sql f795f8ad-a243-4702-8da7-808fcb7e1112
select
  c.id::text,
  c.source_contribution_id,
  c.contributor_id::text,
  c.committee_sboe_id,
  c.transaction_type,
  c.report_name,
  c.date_occurred,
  c.account_code,
  c.amount,
  c.form_of_payment,
  c.purpose,
  c.declaration,
  cm.committee_name,
  cm.candidate_full_name,
  sum(c.amount) over (partition by c.committee_sboe_id) as total_contributions_to_committee,
  count(*) over () as full_count
from contributions c
left join committees cm on cm.sboe_id = c.committee_sboe_id
where c.contributor_id = $1::uuid
order by c.date_occurred asc, c.id asc
limit $2::int
offset $3::int;
`
