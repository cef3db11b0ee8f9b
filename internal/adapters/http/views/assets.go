package views

// dragScript forwards native drag events to the drop endpoint of the list
// they happen on. The server replays the gesture and the page reloads to
// show the re-rendered lists.
const dragScript = `
document.querySelectorAll('#app li[draggable]').forEach(function (li) {
  li.addEventListener('dragstart', function (event) {
    event.dataTransfer.setData('text/plain', li.id);
    event.dataTransfer.effectAllowed = 'move';
  });
});
document.querySelectorAll('#app section.projects').forEach(function (section) {
  var list = section.querySelector('ul');
  section.addEventListener('dragover', function (event) {
    if (event.dataTransfer && event.dataTransfer.types[0] === 'text/plain') {
      event.preventDefault();
      list.classList.add('droppable');
    }
  });
  section.addEventListener('dragleave', function () {
    list.classList.remove('droppable');
  });
  section.addEventListener('drop', function (event) {
    event.preventDefault();
    list.classList.remove('droppable');
    var id = event.dataTransfer.getData('text/plain');
    fetch('/lists/' + section.dataset.status + '/drop', {
      method: 'POST',
      headers: { 'Content-Type': 'text/plain' },
      body: id
    }).then(function () { window.location.reload(); });
  });
});
`

const stylesheet = `
* { box-sizing: border-box; }
html { font-family: sans-serif; }
body { margin: 0; }
.board-header { background: #ff0062; color: white; padding: 1rem; text-align: center; }
#app { width: 40rem; max-width: 90%; margin: 2rem auto; }
#user-input { padding: 1rem; border: 1px solid #ccc; margin-bottom: 2rem; }
.form-control { margin: 0.5rem 0; }
.form-control label { display: block; font-weight: bold; }
.form-control input, .form-control textarea { width: 100%; padding: 0.25rem; }
.alert { background: #fde2e2; border: 1px solid #f5a3a3; padding: 0.5rem; margin-bottom: 0.5rem; }
.projects { margin: 1rem 0; border: 1px solid #ff0062; }
.projects header { background: #ff0062; color: white; padding: 0.5rem 1rem; }
.projects h2 { margin: 0; }
#finished-projects { border-color: #0044ff; }
#finished-projects header { background: #0044ff; }
.projects ul { list-style: none; margin: 0; padding: 1rem; min-height: 3rem; }
.projects ul.droppable { background: #ffe3ee; }
.projects li { box-shadow: 1px 1px 8px rgba(0, 0, 0, 0.26); padding: 1rem; margin: 1rem 0; cursor: move; }
.projects li h2 { color: #ff0062; margin: 0.5rem 0; }
.projects li h3 { color: #575757; font-size: 1rem; }
`
