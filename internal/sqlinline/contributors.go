package sqlinline

// QSearchContributors scores contributors by name similarity and totals
// their giving. Args: $1 name, $2 limit, $3 offset, $4 minimum similarity.
const QSearchContributors = `--sql 1203de6c-2b41-4201-afb8-c59a6781d1d1
with scored as (
  select
    ct.id,
    ct.name,
    ct.city,
    ct.state,
    ct.zip_code,
    ct.profession,
    ct.employer_name,
    similarity(ct.name, $1::text)::float8 as score
  from contributors ct
  where ct.name % $1::text
)
select
  s.id::text,
  s.name,
  s.city,
  s.state,
  s.zip_code,
  s.profession,
  s.employer_name,
  coalesce(t.total, 0) as total,
  s.score,
  count(*) over () as full_count
from scored s
left join lateral (
  select sum(c.amount) as total
  from contributions c
  where c.contributor_id = s.id
) t on true
where s.score >= $4::float8
order by s.score desc, s.name asc, s.id asc
limit $2::int
offset $3::int;
`

// QContributorByID loads one contributor with lifetime totals. Args: $1 id.
const QContributorByID = `--sql 5c35e375-e622-4597-b7df-90269137e77f
select
  ct.id::text,
  ct.name,
  ct.street_line_1,
  ct.street_line_2,
  ct.city,
  ct.state,
  ct.zip_code,
  ct.profession,
  ct.employer_name,
  coalesce(sum(c.amount), 0) as total,
  count(c.id) as contribution_count
from contributors ct
left join contributions c on c.contributor_id = ct.id
where ct.id = $1::uuid
group by ct.id;
`
