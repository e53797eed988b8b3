package sqlinline

// QSearchCommittees scores committees by the better of committee-name and
// candidate-name trigram similarity.
// Args: $1 name, $2 limit, $3 offset, $4 minimum similarity.
const QSearchCommittees = `--sql 31b67c48-a8a6-440d-bef3-55a4f6e8835a
with scored as (
  select
    cm.sboe_id,
    cm.committee_name,
    cm.candidate_full_name,
    cm.party,
    cm.office,
    cm.juris,
    greatest(
      similarity(cm.committee_name, $1::text),
      similarity(coalesce(cm.candidate_full_name, ''), $1::text)
    )::float8 as score
  from committees cm
  where cm.committee_name % $1::text
     or cm.candidate_full_name % $1::text
)
select sboe_id, committee_name, candidate_full_name, party, office, juris, score,
  count(*) over () as full_count
from scored
where score >= $4::float8
order by score desc, committee_name asc, sboe_id asc
limit $2::int
offset $3::int;
`

// QCommitteeBySBOEID loads one committee with its totals. Args: $1 sboe id.
const QCommitteeBySBOEID = `--sql 4e77e695-84ef-44d7-a668-950f8cffeb47
select
  cm.sboe_id,
  cm.committee_name,
  cm.committee_street_1,
  cm.committee_street_2,
  cm.committee_city,
  cm.committee_state,
  cm.committee_full_zip,
  cm.candidate_first_name,
  cm.candidate_middle_name,
  cm.candidate_last_name,
  cm.candidate_full_name,
  cm.party,
  cm.office,
  cm.juris,
  coalesce((select sum(c.amount) from contributions c where c.committee_sboe_id = cm.sboe_id), 0) as total_contributions,
  coalesce((select sum(e.amount) from expenditures e where e.committee_sboe_id = cm.sboe_id), 0) as total_expenditures
from committees cm
where upper(cm.sboe_id) = upper($1::text)
limit 1;
`

// QCandidatesForYear lists candidates whose committees received a
// contribution dated in the year. The distinct-on key includes committee
// name and address so two people with the same name stay separate; a
// candidate with several committees at different addresses appears once per
// committee.
// Args: $1 year, $2 limit, $3 offset.
const QCandidatesForYear = `--sql aff62d32-3a10-45ac-829e-65ab3e7551b9
with candidates_for_year as (
  select distinct on (
      cm.candidate_last_name, cm.candidate_first_name, cm.candidate_middle_name,
      cm.committee_name, cm.committee_street_1, cm.committee_full_zip
    )
    cm.candidate_last_name,
    cm.candidate_first_name,
    cm.candidate_middle_name,
    cm.sboe_id,
    cm.committee_name,
    cm.party,
    cm.office
  from committees cm
  where cm.candidate_last_name is not null
    and exists (
      select 1
      from contributions c
      where c.committee_sboe_id = cm.sboe_id
        and c.date_occurred >= make_date($1::int, 1, 1)
        and c.date_occurred < make_date($1::int + 1, 1, 1)
    )
  order by
    cm.candidate_last_name, cm.candidate_first_name, cm.candidate_middle_name,
    cm.committee_name, cm.committee_street_1, cm.committee_full_zip, cm.sboe_id
)
select candidate_last_name, candidate_first_name, candidate_middle_name,
  sboe_id, committee_name, party, office,
  count(*) over () as full_count
from candidates_for_year
order by candidate_last_name, candidate_first_name, candidate_middle_name, sboe_id
limit $2::int
offset $3::int;
`
